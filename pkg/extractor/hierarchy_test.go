package extractor

import (
	"testing"

	"github.com/kataras/hermes/pkg/design"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHierarchy(t *testing.T) {
	button := &design.Node{ID: "2:1", Name: "Button", Type: "INSTANCE",
		Children: []*design.Node{{ID: "3:1", Type: "TEXT"}, {ID: "3:2", Type: "VECTOR"}},
		ComponentProperties: map[string]any{
			"Label#1:0": map[string]any{"type": "TEXT", "value": "Buy"},
		},
		VariantProperties: map[string]any{
			"Size":  "Large",
			"State": "Hover",
			"Count": 3,
		},
	}
	empty := &design.Node{ID: "2:2", Name: "Empty", Type: "FRAME", Children: []*design.Node{}}
	root := &design.Node{ID: "1:1", Name: "Root", Type: "FRAME", Children: []*design.Node{button, empty}}
	design.Link([]*design.Node{root})

	t.Run("root has no parent", func(t *testing.T) {
		h := ExtractHierarchy(root)
		assert.Nil(t, h.Parent)
		assert.Equal(t, []string{"2:1", "2:2"}, h.Children)
		assert.Nil(t, h.ComponentProperties)
		assert.Nil(t, h.VariantProperties)
	})

	t.Run("instance with properties", func(t *testing.T) {
		h := ExtractHierarchy(button)
		require.NotNil(t, h.Parent)
		assert.Equal(t, "1:1", *h.Parent)
		assert.Equal(t, []string{"3:1", "3:2"}, h.Children)
		assert.Equal(t, map[string]any{"type": "TEXT", "value": "Buy"}, h.ComponentProperties["Label#1:0"])
		assert.Equal(t, map[string]string{"Size": "Large", "State": "Hover"}, h.VariantProperties)
	})

	t.Run("empty container keeps an empty children list", func(t *testing.T) {
		h := ExtractHierarchy(empty)
		assert.NotNil(t, h.Children)
		assert.Empty(t, h.Children)
	})

	t.Run("leaf has no children list", func(t *testing.T) {
		h := ExtractHierarchy(button.Children[0])
		assert.Nil(t, h.Children)
		require.NotNil(t, h.Parent)
		assert.Equal(t, "2:1", *h.Parent)
	})
}
