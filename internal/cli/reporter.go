package cli

import (
	"io"

	"github.com/f9-o/preflight/internal/hostenv"
	"github.com/f9-o/preflight/internal/report"
)

// Report writes the canonical text report for args to out. Every token is
// counted and none is interpreted. No config file or environment variable
// is consulted, and write errors are dropped so the caller always exits 0.
func Report(args []string, out io.Writer) {
	_, _ = report.NewTextWriter(out).Write(report.Collect(args, hostenv.Host()))
}
