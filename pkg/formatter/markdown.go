package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/kataras/hermes/pkg/extractor"
)

// MarkdownFormatter renders a human-readable summary of each node: a screenshot,
// position, size and fill colors. Typography and structure are not rendered.
type MarkdownFormatter struct{}

// Format writes data to w as markdown.
func (f *MarkdownFormatter) Format(w io.Writer, data *extractor.DesignData) error {
	_, err := io.WriteString(w, toMarkdown(data))
	return err
}

// Extension returns the file extension for this format.
func (f *MarkdownFormatter) Extension() string {
	return "md"
}

func toMarkdown(data *extractor.DesignData) string {
	var sb strings.Builder

	sb.WriteString("# Design Specifications\n\n")
	sb.WriteString(fmt.Sprintf("Exported on: %s\n\n", data.Timestamp))

	for _, node := range data.Nodes {
		sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", node.Name, node.Type))

		if node.Screenshot != nil && *node.Screenshot != "" {
			sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", node.Name, *node.Screenshot))
		}

		if m := node.Measurements; m != nil {
			sb.WriteString("### Measurements\n\n")
			sb.WriteString(fmt.Sprintf("- Position: X: %s, Y: %s\n", formatNumber(m.X), formatNumber(m.Y)))
			sb.WriteString(fmt.Sprintf("- Size: Width: %s, Height: %s\n", formatNumber(m.Width), formatNumber(m.Height)))

			if m.Rotation != nil && *m.Rotation != 0 {
				sb.WriteString(fmt.Sprintf("- Rotation: %s°\n", formatNumber(*m.Rotation)))
			}

			sb.WriteString("\n")
		}

		if node.Styles != nil && len(node.Styles.Fills) > 0 {
			sb.WriteString("### Colors\n\n")

			for _, fill := range node.Styles.Fills {
				if fill.Color != nil {
					sb.WriteString(fmt.Sprintf("- %s\n", fill.Color.Hex))
				}
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}
