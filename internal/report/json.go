package report

import (
	"encoding/json"
	"io"

	v1 "github.com/f9-o/preflight/api/v1"
)

// JSONWriter outputs the report as a single JSON object.
type JSONWriter struct {
	output io.Writer
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint indents nested output by two spaces.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is compact unless an option says otherwise.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes r followed by a newline.
func (w *JSONWriter) Write(r *v1.Report) (int, error) {
	cw := &countingWriter{w: w.output}
	enc := json.NewEncoder(cw)
	enc.SetEscapeHTML(false)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	err := enc.Encode(r)
	return cw.n, writeErr("json", err)
}
