// preflightctl report: print the diagnostic report.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/f9-o/preflight/internal/report"
)

func NewReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [args...]",
		Short: "Print the diagnostic report in the selected format",
		Long: `Print the diagnostic report. Positional arguments are counted but never
interpreted; place them after "--" to count tokens that look like flags.`,
		Example: `  preflightctl report
  preflightctl report --format json a b c
  preflightctl report -o markdown -- --not-a-flag`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunReport(cmd, args)
		},
	}
}

// RunReport collects the report for args and writes it to the command's
// stdout in the runtime's output format.
func RunReport(cmd *cobra.Command, args []string) error {
	rt := FromContext(cmd.Context())

	format, err := report.ParseFormat(rt.outputFormat())
	if err != nil {
		return err
	}

	w, err := report.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	r := report.Collect(args, rt.Env)
	n, err := w.Write(r)
	if err != nil {
		return err
	}

	rt.Log.Debug("report written",
		"format", string(format),
		"args", r.ArgCount,
		"runtime_version", r.RuntimeVersion,
		"bytes", n,
	)
	return nil
}
