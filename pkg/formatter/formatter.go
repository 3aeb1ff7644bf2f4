package formatter

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kataras/hermes/pkg/extractor"
)

// Format names an output format.
type Format string

const (
	JSON     Format = "json"
	Markdown Format = "markdown"
	// Claude is the tagged-markup format meant to be pasted into a language model prompt.
	Claude Format = "claude"
)

// Formatter serializes design data into one output format.
type Formatter interface {
	Format(w io.Writer, data *extractor.DesignData) error
	Extension() string
}

// New returns the formatter for format. Unknown formats fall back to JSON.
func New(format Format) Formatter {
	switch format {
	case Markdown:
		return &MarkdownFormatter{}
	case Claude:
		return &ClaudeFormatter{}
	default:
		return &JSONFormatter{}
	}
}

// ToString serializes data with the formatter for format.
func ToString(data *extractor.DesignData, format Format) (string, error) {
	var sb strings.Builder
	if err := New(format).Format(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// formatNumber renders v the way the design tool's scripting runtime prints numbers:
// integral values without a decimal point, shortest round-trip digits otherwise and
// exponent notation outside [1e-6, 1e21).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
