// Package v1 defines the public data types shared across all preflight layers.
package v1

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Report
// ─────────────────────────────────────────────────────────────────────────────

// Report is the set of facts gathered by a single preflight invocation.
// Every output format renders the same Report.
type Report struct {
	Message        string `json:"message"         yaml:"message"`
	ArgCount       int    `json:"arg_count"       yaml:"arg_count"`
	Runtime        string `json:"runtime"         yaml:"runtime"`
	RuntimeVersion string `json:"runtime_version" yaml:"runtime_version"`
	OS             string `json:"os"              yaml:"os"`
	Arch           string `json:"arch"            yaml:"arch"`
	SumFrom        int    `json:"sum_from"        yaml:"sum_from"`
	SumTo          int    `json:"sum_to"          yaml:"sum_to"`
	Sum            int    `json:"sum"             yaml:"sum"`
}

// ArgsLine returns "Args length: N".
func (r *Report) ArgsLine() string {
	return fmt.Sprintf("Args length: %d", r.ArgCount)
}

// VersionLine returns "<Runtime> version: <RuntimeVersion>".
func (r *Report) VersionLine() string {
	return fmt.Sprintf("%s version: %s", r.Runtime, r.RuntimeVersion)
}

// PlatformLine returns "OS: <os> (<arch>)".
func (r *Report) PlatformLine() string {
	return fmt.Sprintf("OS: %s (%s)", r.OS, r.Arch)
}

// SumLine returns "Sum <from>..<to> = <sum>".
func (r *Report) SumLine() string {
	return fmt.Sprintf("Sum %d..%d = %d", r.SumFrom, r.SumTo, r.Sum)
}

// Lines returns the canonical report lines in output order.
func (r *Report) Lines() []string {
	return []string{
		r.Message,
		r.ArgsLine(),
		r.VersionLine(),
		r.PlatformLine(),
		r.SumLine(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Build metadata
// ─────────────────────────────────────────────────────────────────────────────

// BuildInfo describes the preflight binary itself.
type BuildInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"os_arch"    yaml:"os_arch"`
}
