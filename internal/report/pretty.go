package report

import (
	"io"

	v1 "github.com/f9-o/preflight/api/v1"
	"github.com/f9-o/preflight/pkg/pprint"
)

// PrettyWriter outputs the report inside a bordered panel. Colours are
// only emitted when the destination is a terminal.
type PrettyWriter struct {
	printer *pprint.Printer
}

// NewPrettyWriter creates a PrettyWriter that outputs to the given writer.
func NewPrettyWriter(output io.Writer) *PrettyWriter {
	return &PrettyWriter{printer: pprint.New(output)}
}

// Write outputs r with the confirmation message as the panel title.
func (w *PrettyWriter) Write(r *v1.Report) (int, error) {
	n, err := w.printer.Panel(r.Message,
		r.ArgsLine(),
		r.VersionLine(),
		r.PlatformLine(),
		r.SumLine(),
	)
	return n, writeErr("pretty", err)
}
