// preflight: print the toolchain diagnostic report.
// Every argument is counted, none is interpreted, and the exit status is always 0.
package main

import (
	"os"

	"github.com/f9-o/preflight/internal/cli"
)

func main() {
	cli.Report(os.Args[1:], os.Stdout)
}
