package design

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDocument = `
name: Landing
nodes:
  - id: "1:1"
    name: Card
    type: FRAME
    width: 320
    height: 200
    visible: true
    layoutMode: VERTICAL
    itemSpacing: 8
    children:
      - id: "1:2"
        name: Title
        type: TEXT
        x: 24
        y: 16
        fontName: {family: Inter, style: Bold}
        fontSize: 18
        lineHeight: {unit: AUTO}
        fills:
          - type: SOLID
            color: {r: 0.2, g: 0.2, b: 0.2}
      - id: "1:3"
        name: Slot
        type: FRAME
        children: []
  - id: "2:1"
    name: Divider
    type: LINE
`

func TestLoadDocument_YAML(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(yamlDocument))
	require.NoError(t, err)

	assert.Equal(t, "Landing", doc.Name)
	require.Len(t, doc.Nodes, 2)

	card := doc.Nodes[0]
	assert.Equal(t, "1:1", card.ID)
	assert.True(t, card.Visible)
	assert.Equal(t, Ptr("VERTICAL"), card.LayoutMode)
	assert.Equal(t, Ptr(8.0), card.ItemSpacing)
	assert.Nil(t, card.Parent)
	require.Len(t, card.Children, 2)

	title := card.Children[0]
	assert.Same(t, card, title.Parent)
	assert.Equal(t, &FontName{Family: "Inter", Style: "Bold"}, title.FontName)
	assert.Equal(t, map[string]any{"unit": "AUTO"}, title.LineHeight)
	require.Len(t, title.Fills, 1)
	assert.Equal(t, &RGB{R: 0.2, G: 0.2, B: 0.2}, title.Fills[0].Color)
	assert.False(t, title.IsContainer())

	slot := card.Children[1]
	assert.Same(t, card, slot.Parent)
	assert.True(t, slot.IsContainer(), "an empty children list is still a container")
	assert.Empty(t, slot.Children)

	assert.False(t, doc.Nodes[1].IsContainer())
}

func TestLoadDocument_JSON(t *testing.T) {
	const jsonDocument = `{
  "name": "Landing",
  "selection": ["1:2"],
  "nodes": [
    {"id": "1:1", "name": "Card", "type": "FRAME", "children": [
      {"id": "1:2", "name": "Title", "type": "TEXT", "x": 24, "y": 16}
    ]}
  ]
}`

	doc, err := LoadDocument(strings.NewReader(jsonDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"1:2"}, doc.Selection)
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Children, 1)
	assert.Same(t, doc.Nodes[0], doc.Nodes[0].Children[0].Parent)
	assert.Equal(t, 24.0, doc.Nodes[0].Children[0].X)
}

func TestLoadDocument_Errors(t *testing.T) {
	_, err := LoadDocument(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input")

	_, err = LoadDocument(strings.NewReader("nodes: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode document")
}

func TestLoadDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDocument), 0644))

	doc, err := LoadDocumentFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 2)

	_, err = LoadDocumentFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDocument_Find(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(yamlDocument))
	require.NoError(t, err)

	assert.Equal(t, "Slot", doc.Find("1:3").Name)
	assert.Equal(t, "Divider", doc.Find("2:1").Name)
	assert.Nil(t, doc.Find("9:9"))
}

func TestDocument_ResolveSelection(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(yamlDocument))
	require.NoError(t, err)

	t.Run("top-level nodes by default", func(t *testing.T) {
		selection, err := doc.ResolveSelection()
		require.NoError(t, err)
		require.Len(t, selection, 2)
		assert.Equal(t, "1:1", selection[0].ID)
		assert.Equal(t, "2:1", selection[1].ID)
	})

	t.Run("explicit selection keeps its order", func(t *testing.T) {
		d := *doc
		d.Selection = []string{"2:1", "1:2"}

		selection, err := d.ResolveSelection()
		require.NoError(t, err)
		require.Len(t, selection, 2)
		assert.Equal(t, "2:1", selection[0].ID)
		assert.Equal(t, "1:2", selection[1].ID)
		assert.NotNil(t, selection[1].Parent)
	})

	t.Run("unknown id", func(t *testing.T) {
		d := *doc
		d.Selection = []string{"404"}

		_, err := d.ResolveSelection()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"404"`)
	})
}

func TestNode_IndexOf(t *testing.T) {
	a, b := &Node{ID: "a"}, &Node{ID: "b"}
	parent := &Node{Children: []*Node{a, b}}

	assert.Equal(t, 0, parent.IndexOf(a))
	assert.Equal(t, 1, parent.IndexOf(b))
	assert.Equal(t, -1, parent.IndexOf(&Node{ID: "a"}))
}

func TestLink_SkipsNilChildren(t *testing.T) {
	child := &Node{ID: "c"}
	root := &Node{ID: "r", Children: []*Node{nil, child}}

	assert.NotPanics(t, func() { Link([]*Node{nil, root}) })
	assert.Same(t, root, child.Parent)
}
