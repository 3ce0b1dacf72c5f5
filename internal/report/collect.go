// Package report gathers the preflight diagnostic report and renders it
// in the supported output formats.
package report

import (
	v1 "github.com/f9-o/preflight/api/v1"
	"github.com/f9-o/preflight/internal/hostenv"
)

// Message is the confirmation line printed first in every report.
const Message = "Go is set up! ✅"

// Bounds of the fixed summation. They never depend on input.
const (
	SumFrom = 1
	SumTo   = 5
)

// SumRange adds every integer in [from, to]. An empty range sums to 0.
func SumRange(from, to int) int {
	sum := 0
	for i := from; i <= to; i++ {
		sum += i
	}
	return sum
}

// Collect builds the report for one invocation. Only the number of args
// is used; their values never affect the result.
func Collect(args []string, env hostenv.Environment) *v1.Report {
	return &v1.Report{
		Message:        Message,
		ArgCount:       len(args),
		Runtime:        env.RuntimeName(),
		RuntimeVersion: env.RuntimeVersion(),
		OS:             env.OS(),
		Arch:           env.Arch(),
		SumFrom:        SumFrom,
		SumTo:          SumTo,
		Sum:            SumRange(SumFrom, SumTo),
	}
}
