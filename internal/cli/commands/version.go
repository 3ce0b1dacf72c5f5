// preflightctl version: print version information.
package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/f9-o/preflight/internal/buildinfo"
	"github.com/f9-o/preflight/pkg/errs"
	"github.com/f9-o/preflight/pkg/pprint"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print preflight version information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Read()
			out := cmd.OutOrStdout()

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return errs.Wrap(enc.Encode(info), errs.ErrOutputWrite, "version.json")
			case "yaml":
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(info); err != nil {
					return errs.Wrap(err, errs.ErrOutputWrite, "version.yaml")
				}
				return errs.Wrap(enc.Close(), errs.ErrOutputWrite, "version.yaml")
			case "", "text", "pretty":
			default:
				return errs.Newf(errs.ErrValidation, "version.format", "unsupported format %q", format).
					WithAdvice("use text, json or yaml")
			}

			p := pprint.New(out)
			p.Banner(info.Version, info.BuildDate)
			p.KV("Version", info.Version)
			p.KV("Commit", info.Commit)
			p.KV("Built", info.BuildDate)
			p.KV("Go", info.GoVersion)
			p.KV("Platform", info.Platform)
			return nil
		},
	}
}
