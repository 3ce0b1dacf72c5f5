// Package commands provides the shared context type and all CLI subcommands.
package commands

import (
	"context"

	"github.com/f9-o/preflight/internal/core/config"
	"github.com/f9-o/preflight/internal/core/logger"
	"github.com/f9-o/preflight/internal/hostenv"
)

// contextKey is the key type for values stored in a command context.
type contextKey string

const runtimeContextKey contextKey = "preflight.runtime"

// GlobalFlags holds the parsed global flags for use by subcommands.
type GlobalFlags struct {
	ConfigFile string
	Format     string
	Debug      bool
}

// Runtime is the shared dependency bundle injected into each subcommand via context.
type Runtime struct {
	Config *config.Config
	Log    *logger.Logger
	Env    hostenv.Environment
	Flags  GlobalFlags
}

// NewContext returns a new context carrying the Runtime.
func NewContext(parent context.Context, rt *Runtime) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, runtimeContextKey, rt)
}

// FromContext extracts the Runtime from ctx. Panics if not present (programming error).
func FromContext(ctx context.Context) *Runtime {
	rt, ok := ctx.Value(runtimeContextKey).(*Runtime)
	if !ok || rt == nil {
		panic("preflight: Runtime not found in context, missing PersistentPreRunE?")
	}
	return rt
}

// outputFormat picks the --format flag over the configured format.
func (rt *Runtime) outputFormat() string {
	if rt.Flags.Format != "" {
		return rt.Flags.Format
	}
	if rt.Config != nil {
		return rt.Config.Output.Format
	}
	return ""
}
