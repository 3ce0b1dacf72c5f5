package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	v1 "github.com/f9-o/preflight/api/v1"
)

// MarkdownWriter outputs the report as a Markdown heading and table,
// suitable for pasting into an issue or CI summary.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs r in Markdown format.
func (w *MarkdownWriter) Write(r *v1.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(r.Message)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Args length", strconv.Itoa(r.ArgCount)},
			{r.Runtime + " version", "`" + r.RuntimeVersion + "`"},
			{"OS", r.OS},
			{"Arch", r.Arch},
			{"Sum " + strconv.Itoa(r.SumFrom) + ".." + strconv.Itoa(r.SumTo), strconv.Itoa(r.Sum)},
		},
	})

	return len(md.String()), writeErr("markdown", md.Build())
}
