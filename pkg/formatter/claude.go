package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/kataras/hermes/pkg/extractor"
)

// ClaudeFormatter renders design data as XML-like tagged markup, one <component>
// element per node inside a <design_specs> root.
//
// String values are written as-is, without escaping: a name or font family that
// contains markup characters produces malformed markup.
type ClaudeFormatter struct{}

// Format writes data to w as tagged markup.
func (f *ClaudeFormatter) Format(w io.Writer, data *extractor.DesignData) error {
	_, err := io.WriteString(w, toClaude(data))
	return err
}

// Extension returns the file extension for this format.
func (f *ClaudeFormatter) Extension() string {
	return "xml"
}

func toClaude(data *extractor.DesignData) string {
	var sb strings.Builder

	sb.WriteString("<design_specs>\n")

	for _, node := range data.Nodes {
		sb.WriteString(fmt.Sprintf("  <component name=\"%s\" type=\"%s\">\n", node.Name, node.Type))

		if node.Screenshot != nil && *node.Screenshot != "" {
			sb.WriteString(fmt.Sprintf("    <screenshot>%s</screenshot>\n", *node.Screenshot))
		}

		if node.Measurements != nil {
			writeMeasurements(&sb, node.Measurements)
		}

		if node.Styles != nil {
			writeStyles(&sb, node.Styles)
		}

		if node.Structure != nil {
			writeStructure(&sb, node.Structure)
		}

		sb.WriteString("  </component>\n")
	}

	sb.WriteString("</design_specs>")

	return sb.String()
}

func writeMeasurements(sb *strings.Builder, m *extractor.MeasurementsData) {
	sb.WriteString("    <measurements>\n")
	sb.WriteString(fmt.Sprintf("      <position x=\"%s\" y=\"%s\" />\n", formatNumber(m.X), formatNumber(m.Y)))
	sb.WriteString(fmt.Sprintf("      <size width=\"%s\" height=\"%s\" />\n", formatNumber(m.Width), formatNumber(m.Height)))

	if m.Rotation != nil && *m.Rotation != 0 {
		sb.WriteString(fmt.Sprintf("      <rotation>%s</rotation>\n", formatNumber(*m.Rotation)))
	}

	if p := m.Padding; p != nil {
		sb.WriteString("      <padding")
		writeAttr(sb, "top", p.Top)
		writeAttr(sb, "right", p.Right)
		writeAttr(sb, "bottom", p.Bottom)
		writeAttr(sb, "left", p.Left)
		sb.WriteString(" />\n")
	}

	sb.WriteString("    </measurements>\n")
}

func writeStyles(sb *strings.Builder, s *extractor.StylesData) {
	sb.WriteString("    <styles>\n")

	if len(s.Fills) > 0 {
		sb.WriteString("      <fills>\n")

		for _, fill := range s.Fills {
			sb.WriteString(fmt.Sprintf("        <fill type=\"%s\">\n", fill.Type))

			if c := fill.Color; c != nil {
				sb.WriteString(fmt.Sprintf("          <color hex=\"%s\" r=\"%s\" g=\"%s\" b=\"%s\" a=\"%s\" />\n",
					c.Hex, formatNumber(c.R), formatNumber(c.G), formatNumber(c.B), formatNumber(c.A)))
			}

			sb.WriteString("        </fill>\n")
		}

		sb.WriteString("      </fills>\n")
	}

	if t := s.Typography; t != nil {
		sb.WriteString("      <typography>\n")
		sb.WriteString(fmt.Sprintf("        <font family=\"%s\" size=\"%s\" weight=\"%d\" />\n",
			t.FontFamily, formatNumber(t.FontSize), t.FontWeight))
		sb.WriteString(fmt.Sprintf("        <color hex=\"%s\" />\n", t.Color.Hex))
		sb.WriteString("      </typography>\n")
	}

	sb.WriteString("    </styles>\n")
}

func writeStructure(sb *strings.Builder, s *extractor.StructureData) {
	sb.WriteString("    <structure>\n")

	if s.IsAutoLayout {
		sb.WriteString("      <autoLayout")
		if s.LayoutMode != nil && *s.LayoutMode != "" {
			sb.WriteString(fmt.Sprintf(" mode=\"%s\"", *s.LayoutMode))
		}
		writeAttr(sb, "spacing", s.ItemSpacing)
		sb.WriteString(" />\n")
	}

	sb.WriteString("    </structure>\n")
}

// writeAttr writes ` name="value"` when v is set.
func writeAttr(sb *strings.Builder, name string, v *float64) {
	if v != nil {
		sb.WriteString(fmt.Sprintf(" %s=\"%s\"", name, formatNumber(*v)))
	}
}
