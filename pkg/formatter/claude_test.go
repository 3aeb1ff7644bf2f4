package formatter

import (
	"strings"
	"testing"

	"github.com/kataras/hermes/pkg/design"
	"github.com/kataras/hermes/pkg/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeFormatter(t *testing.T) {
	want := `<design_specs>
  <component name="Card" type="FRAME">
    <screenshot>data:image/png;base64,AAAA</screenshot>
    <measurements>
      <position x="0" y="0" />
      <size width="320" height="200.5" />
      <padding top="16" left="24" />
    </measurements>
    <styles>
      <fills>
        <fill type="SOLID">
          <color hex="#ffffff" r="1" g="1" b="1" a="1" />
        </fill>
        <fill type="IMAGE">
        </fill>
      </fills>
    </styles>
    <structure>
      <autoLayout mode="VERTICAL" spacing="8" />
    </structure>
  </component>
  <component name="Title" type="TEXT">
    <measurements>
      <position x="24" y="16" />
      <size width="272" height="24" />
      <rotation>-90</rotation>
    </measurements>
    <styles>
      <fills>
        <fill type="SOLID">
          <color hex="#333333" r="0.2" g="0.2" b="0.2" a="1" />
        </fill>
      </fills>
      <typography>
        <font family="Inter" size="18" weight="700" />
        <color hex="#333333" />
      </typography>
    </styles>
    <structure>
    </structure>
  </component>
</design_specs>`

	var sb strings.Builder
	require.NoError(t, (&ClaudeFormatter{}).Format(&sb, sampleData()))
	assert.Equal(t, want, sb.String())
}

func TestClaudeFormatter_AutoLayoutAttributes(t *testing.T) {
	tests := []struct {
		name      string
		structure *extractor.StructureData
		want      string
	}{
		{
			name:      "mode only",
			structure: &extractor.StructureData{IsAutoLayout: true, LayoutMode: design.Ptr("HORIZONTAL")},
			want:      `<autoLayout mode="HORIZONTAL" />`,
		},
		{
			name:      "zero spacing is written",
			structure: &extractor.StructureData{IsAutoLayout: true, LayoutMode: design.Ptr("VERTICAL"), ItemSpacing: design.Ptr(0.0)},
			want:      `<autoLayout mode="VERTICAL" spacing="0" />`,
		},
		{
			name:      "empty mode is skipped",
			structure: &extractor.StructureData{IsAutoLayout: true, LayoutMode: design.Ptr(""), ItemSpacing: design.Ptr(4.0)},
			want:      `<autoLayout spacing="4" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &extractor.DesignData{Nodes: []*extractor.NodeData{{Name: "n", Type: "FRAME", Structure: tt.structure}}}
			out, err := ToString(data, Claude)
			require.NoError(t, err)
			assert.Contains(t, out, "      "+tt.want+"\n")
		})
	}
}

func TestClaudeFormatter_DoesNotEscape(t *testing.T) {
	data := &extractor.DesignData{Nodes: []*extractor.NodeData{{Name: `Say "hi" <now>`, Type: "TEXT"}}}

	out, err := ToString(data, Claude)
	require.NoError(t, err)
	assert.Contains(t, out, `<component name="Say "hi" <now>" type="TEXT">`)
}
