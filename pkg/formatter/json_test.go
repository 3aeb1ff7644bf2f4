package formatter

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/kataras/hermes/pkg/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	data := &extractor.DesignData{
		Timestamp: "2024-05-01T09:30:00.000Z",
		Nodes: []*extractor.NodeData{
			{
				ID:   "1:1",
				Name: "<Card>",
				Type: "FRAME",
				Hierarchy: &extractor.HierarchyData{
					Children: []string{},
				},
			},
		},
	}

	want := `{
  "timestamp": "2024-05-01T09:30:00.000Z",
  "nodes": [
    {
      "id": "1:1",
      "name": "<Card>",
      "type": "FRAME",
      "hierarchy": {
        "children": []
      }
    }
  ]
}`

	var sb strings.Builder
	require.NoError(t, (&JSONFormatter{}).Format(&sb, data))
	assert.Equal(t, want, sb.String())
}

func TestJSONFormatter_ValidAndComplete(t *testing.T) {
	out, err := ToString(sampleData(), JSON)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	assert.False(t, strings.HasSuffix(out, "\n"))

	var got extractor.DesignData
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sampleData(), &got)
}

func TestJSONFormatter_OmitsAbsentFields(t *testing.T) {
	out, err := ToString(sampleData(), JSON)
	require.NoError(t, err)

	var raw struct {
		Nodes []map[string]any `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	require.Len(t, raw.Nodes, 2)

	assert.NotContains(t, raw.Nodes[0], "hierarchy")
	assert.Equal(t, "", raw.Nodes[1]["screenshot"], "an empty screenshot is kept")

	hierarchy := raw.Nodes[1]["hierarchy"].(map[string]any)
	assert.Equal(t, map[string]any{"parent": "1:1"}, hierarchy)

	structure := raw.Nodes[1]["structure"].(map[string]any)
	assert.Equal(t, map[string]any{"isAutoLayout": false}, structure)
}

func TestJSONFormatter_NonFiniteNumbers(t *testing.T) {
	data := &extractor.DesignData{Nodes: []*extractor.NodeData{{
		ID:           "1:1",
		Measurements: &extractor.MeasurementsData{X: math.NaN()},
	}}}

	var sb strings.Builder
	err := (&JSONFormatter{}).Format(&sb, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NaN")
	assert.Empty(t, sb.String(), "nothing is written on failure")

	data.Nodes[0].Measurements.X = math.Copysign(0, -1)
	out, err := ToString(data, JSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"x": -0,`)
}
