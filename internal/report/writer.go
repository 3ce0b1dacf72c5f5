package report

import (
	"fmt"
	"io"
	"strings"

	v1 "github.com/f9-o/preflight/api/v1"
	"github.com/f9-o/preflight/pkg/errs"
)

// Writer renders a report to its destination.
type Writer interface {
	// Write outputs r and returns the number of bytes written.
	Write(r *v1.Report) (int, error)
}

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPretty   Format = "pretty"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatPretty}

// ParseFormat resolves a format name. Matching is case-insensitive and
// an empty name selects text.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	if name == "md" {
		return FormatMarkdown, nil
	}
	return "", errs.Newf(errs.ErrValidation, "report.format", "unknown format %q", name).
		WithAdvice("use one of: " + formatList())
}

// NewWriter returns the Writer for f bound to out.
func NewWriter(f Format, out io.Writer) (Writer, error) {
	switch f {
	case FormatText, "":
		return NewTextWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out, WithPrettyPrint()), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatPretty:
		return NewPrettyWriter(out), nil
	}
	return nil, errs.Newf(errs.ErrValidation, "report.writer", "unsupported format %q", f)
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// countingWriter tracks bytes written through encoders that do not report them.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return errs.New(errs.ErrOutputWrite, "report.write", fmt.Errorf("%s: %w", op, err)).
		WithAdvice("check that standard output is writable")
}
