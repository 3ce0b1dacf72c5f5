// Package cli wires the two preflight entry points: the fixed reporter used
// by cmd/preflight and the Cobra command tree used by cmd/preflightctl.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/f9-o/preflight/internal/buildinfo"
	"github.com/f9-o/preflight/internal/cli/commands"
	"github.com/f9-o/preflight/internal/core/config"
	"github.com/f9-o/preflight/internal/core/logger"
	"github.com/f9-o/preflight/internal/hostenv"
	"github.com/f9-o/preflight/pkg/errs"
	"github.com/f9-o/preflight/pkg/pprint"
)

// app holds the state of one preflightctl execution.
type app struct {
	flags commands.GlobalFlags
	rt    *commands.Runtime
}

// NewRootCmd builds the preflightctl command tree.
func NewRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "preflightctl",
		Short: "Preflightctl: render and inspect the preflight diagnostic report",
		Long: `preflightctl renders the preflight report in other formats and prints
build information. It reads preflight.yaml and PREFLIGHT_* environment
variables. The preflight binary itself reads neither and always prints
the plain five-line report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "completion":
				return nil
			}
			var err error
			a.rt, err = initRuntime(cmd, a.flags)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&a.flags.ConfigFile, "config", "c", "", "Path to preflight.yaml (defaults to auto-discovery)")
	root.PersistentFlags().StringVarP(&a.flags.Format, "format", "o", "", "Output format: text, json, yaml, markdown, pretty")
	root.PersistentFlags().BoolVar(&a.flags.Debug, "debug", false, "Enable debug-level logging on stderr")

	root.AddCommand(
		commands.NewReportCmd(),
		commands.NewVersionCmd(),
	)

	origHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		info := buildinfo.Read()
		pprint.New(cmd.OutOrStdout()).Banner(info.Version, info.BuildDate)
		origHelp(cmd, args)
	})

	return root
}

// Execute runs preflightctl against the process arguments. Called by main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes preflightctl with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return (&app{}).run(args, stdout, stderr)
}

func (a *app) run(args []string, stdout, stderr io.Writer) int {
	root := a.rootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	if a.rt != nil {
		if cerr := a.rt.Log.Close(); cerr != nil && err == nil {
			err = errs.New(errs.ErrInternal, "logger.close", cerr)
		}
	}
	if err != nil {
		p := pprint.New(stderr)
		if e := errs.As(err); e != nil {
			p.Error("%s", e.UserMessage())
		} else {
			p.Error("%s", err)
		}
		return 1
	}
	return 0
}

// initRuntime loads config and logger before each command runs.
func initRuntime(cmd *cobra.Command, flags commands.GlobalFlags) (*commands.Runtime, error) {
	cfg, cfgErr := config.Load(flags.ConfigFile)
	if cfgErr != nil && flags.ConfigFile != "" {
		return nil, cfgErr
	}
	if cfg == nil {
		cfg = config.Default()
	}

	log, err := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Debug:  flags.Debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		// A broken log file must not stop the report.
		log, _ = logger.Init(logger.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Debug:  flags.Debug,
			Stderr: cmd.ErrOrStderr(),
		})
		log.Warn("log file disabled", "error", err)
	}

	if cfgErr != nil {
		log.Warn("ignoring config, using defaults", "error", cfgErr)
	}
	log.Debug("runtime initialised",
		"command", cmd.CommandPath(),
		"config", cfg.Source,
		"format", cfg.Output.Format,
	)

	rt := &commands.Runtime{
		Config: cfg,
		Log:    log,
		Env:    hostenv.Host(),
		Flags:  flags,
	}
	cmd.SetContext(commands.NewContext(cmd.Context(), rt))

	return rt, nil
}
