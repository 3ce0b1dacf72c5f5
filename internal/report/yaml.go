package report

import (
	"io"

	"gopkg.in/yaml.v3"

	v1 "github.com/f9-o/preflight/api/v1"
)

// YAMLWriter outputs the report as a YAML document.
type YAMLWriter struct {
	output io.Writer
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{output: output}
}

// Write encodes r with two-space indentation.
func (w *YAMLWriter) Write(r *v1.Report) (int, error) {
	cw := &countingWriter{w: w.output}
	enc := yaml.NewEncoder(cw)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return cw.n, writeErr("yaml", err)
	}
	err := enc.Close()
	return cw.n, writeErr("yaml", err)
}
