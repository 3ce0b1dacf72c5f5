package report

import (
	"io"
	"strings"

	v1 "github.com/f9-o/preflight/api/v1"
)

// TextWriter prints the canonical line-per-fact report:
//
//	Go is set up! ✅
//	Args length: 0
//	Go version: go1.22.4
//	OS: linux (amd64)
//	Sum 1..5 = 15
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs r as newline-terminated lines in a single write.
func (w *TextWriter) Write(r *v1.Report) (int, error) {
	n, err := io.WriteString(w.output, strings.Join(r.Lines(), "\n")+"\n")
	return n, writeErr("text", err)
}
