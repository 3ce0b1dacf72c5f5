// Package hostenv reports facts about the runtime executing preflight.
package hostenv

import "runtime"

// Placeholder is reported for any property the host leaves empty.
const Placeholder = "unknown"

// Environment describes the execution environment shown in a report.
type Environment interface {
	RuntimeName() string
	RuntimeVersion() string
	OS() string
	Arch() string
}

// Host returns the Environment of the running Go binary.
func Host() Environment {
	return Static{
		Name:    "Go",
		Version: runtime.Version(),
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
	}
}

// Static is an Environment with fixed values.
type Static struct {
	Name    string
	Version string
	GOOS    string
	GOARCH  string
}

func (s Static) RuntimeName() string    { return orPlaceholder(s.Name) }
func (s Static) RuntimeVersion() string { return orPlaceholder(s.Version) }
func (s Static) OS() string             { return orPlaceholder(s.GOOS) }
func (s Static) Arch() string           { return orPlaceholder(s.GOARCH) }

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
