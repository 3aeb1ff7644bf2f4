package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
name: Landing
selection: ["1:2"]
nodes:
  - id: "1:1"
    name: Card
    type: FRAME
    width: 320
    height: 200
    children:
      - id: "1:2"
        name: Title
        type: TEXT
        x: 24
        y: 16
        width: 272
        height: 24
        fontName: {family: Inter, style: Medium}
        fontSize: 18
        fills:
          - type: SOLID
            color: {r: 0, g: 0, b: 0}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRun_DocumentToJSON(t *testing.T) {
	path := writeFile(t, "design.yaml", document)

	out, err := execute(t, "--file", path, "--format", "json", "--screenshot=false")
	require.NoError(t, err)

	var data struct {
		Nodes []struct {
			ID        string `json:"id"`
			Hierarchy struct {
				Parent string `json:"parent"`
			} `json:"hierarchy"`
			Measurements struct {
				Margin map[string]float64 `json:"margin"`
			} `json:"measurements"`
			Styles struct {
				Typography struct {
					FontWeight int `json:"fontWeight"`
				} `json:"typography"`
			} `json:"styles"`
			Screenshot *string `json:"screenshot"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &data))
	require.Len(t, data.Nodes, 1)

	node := data.Nodes[0]
	assert.Equal(t, "1:2", node.ID)
	assert.Equal(t, "1:1", node.Hierarchy.Parent)
	assert.Equal(t, map[string]float64{"top": 16, "left": 24}, node.Measurements.Margin)
	assert.Equal(t, 500, node.Styles.Typography.FontWeight)
	assert.Nil(t, node.Screenshot)
}

func TestRun_ConfigFileAndFlags(t *testing.T) {
	path := writeFile(t, "design.yaml", document)
	config := writeFile(t, "hermes.yaml", "outputFormat: markdown\nincludeScreenshot: false\n")

	out, err := execute(t, "--file", path, "--config", config)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Design Specifications\n\n"))
	assert.Contains(t, out, "## Title (TEXT)")

	out, err = execute(t, "--file", path, "--config", config, "--format", "claude")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<design_specs>\n"), "flags override the config file")
}

func TestRun_OutputFile(t *testing.T) {
	path := writeFile(t, "design.yaml", document)
	output := filepath.Join(t.TempDir(), "specs.xml")

	out, err := execute(t, "--file", path, "--output", output, "--screenshot=false")
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<design_specs>\n"))
}

func TestRun_Errors(t *testing.T) {
	path := writeFile(t, "design.yaml", document)

	_, err := execute(t)
	assert.Error(t, err, "a source is required")

	_, err = execute(t, "--file", path, "--url", "https://www.figma.com/file/ABC/x")
	assert.Error(t, err)

	_, err = execute(t, "--file", path, "--node-ids", "9:9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "9:9")

	empty := writeFile(t, "empty.yaml", "name: Empty\nnodes: []\n")
	_, err = execute(t, "--file", empty)
	require.Error(t, err)
	assert.Equal(t, "Please select at least one layer to export.", err.Error())

	_, err = execute(t, "--url", "https://www.figma.com/file/ABC/x", "--token", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hermes version "+version+"\n", out)
}
