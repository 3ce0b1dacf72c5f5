// preflightctl: main entry point.
// Keeps this file thin: hand build-time vars to buildinfo, then execute the CLI.
package main

import (
	"github.com/f9-o/preflight/internal/buildinfo"
	"github.com/f9-o/preflight/internal/cli"
)

// Build-time variables injected via:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=abc1234 -X main.buildDate=2026-01-01"
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

func main() {
	stampBuildInfo()
	cli.Execute()
}

// stampBuildInfo propagates build metadata to the version command.
func stampBuildInfo() {
	buildinfo.Version = version
	buildinfo.Commit = commit
	buildinfo.BuildDate = buildDate
}
