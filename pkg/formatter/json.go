package formatter

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/kataras/hermes/pkg/extractor"
)

// JSONFormatter dumps design data as JSON indented with two spaces.
type JSONFormatter struct{}

// Format writes data to w. Markup characters are not HTML-escaped and there is no
// trailing newline.
//
// Numbers are expected to be finite: a NaN or infinite value anywhere in data makes
// Format fail with an encoding error, and a negative zero is written as -0.
func (f *JSONFormatter) Format(w io.Writer, data *extractor.DesignData) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		return err
	}

	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// Extension returns the file extension for this format.
func (f *JSONFormatter) Extension() string {
	return "json"
}
