// Package pprint provides styled terminal output for the preflight CLI.
// Colour is decided per writer: a Printer bound to a pipe or buffer
// renders plain text, one bound to a terminal renders the palette below.
package pprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─────────────────────────────────────────────────────────────────────────────
// Colour palette
// ─────────────────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("#7B8CDE") // blue-purple
	ColorAccent  = lipgloss.Color("#56E0C8") // teal
	ColorError   = lipgloss.Color("#FC8181") // red
	ColorMuted   = lipgloss.Color("#4A5568") // grey
	ColorText    = lipgloss.Color("#E2E8F0") // off-white
)

// ─────────────────────────────────────────────────────────────────────────────
// Printer
// ─────────────────────────────────────────────────────────────────────────────

// Printer writes styled lines to a single destination.
type Printer struct {
	out io.Writer

	err     lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	primary lipgloss.Style
	text    lipgloss.Style
	label   lipgloss.Style
	panel   lipgloss.Style
}

// New returns a Printer writing to out. Styles are resolved against out's
// colour capabilities.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		err:     r.NewStyle().Foreground(ColorError).Bold(true),
		muted:   r.NewStyle().Foreground(ColorMuted),
		accent:  r.NewStyle().Foreground(ColorAccent).Bold(true),
		primary: r.NewStyle().Foreground(ColorPrimary).Bold(true),
		text:    r.NewStyle().Foreground(ColorText),
		label: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(14),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2),
	}
}

// Error prints a red ✗ line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, p.err.Render("✗ ")+p.text.Render(fmt.Sprintf(format, args...)))
}

// KV prints a labelled key-value pair.
func (p *Printer) KV(key, value string) {
	fmt.Fprintln(p.out, p.label.Render(key)+p.text.Render(value))
}

// Panel renders a rounded-border box with an optional title line.
func (p *Printer) Panel(title string, lines ...string) (int, error) {
	body := p.text.Render(strings.Join(lines, "\n"))
	if title != "" {
		body = p.accent.Render(title) + "\n" + body
	}
	return fmt.Fprintln(p.out, p.panel.Render(body))
}
