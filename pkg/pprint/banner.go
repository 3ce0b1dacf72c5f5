package pprint

import "fmt"

// Banner prints the preflight wordmark with version and tagline.
func (p *Printer) Banner(version, buildDate string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.primary.Render("  ┌─┐┬─┐┌─┐┌─┐┬  ┬┌─┐┬ ┬┌┬┐"))
	fmt.Fprintln(p.out, p.accent.Render("  ├─┘├┬┘├┤ ├┤ │  ││ ┬├─┤ │ "))
	fmt.Fprintln(p.out, p.muted.Render("  ┴  ┴└─└─┘└  ┴─┘┴└─┘┴ ┴ ┴ "))
	fmt.Fprintln(p.out)

	versionStr := p.accent.Render("  " + version)
	if buildDate != "" {
		versionStr += p.muted.Render("  built " + buildDate)
	}

	fmt.Fprintln(p.out, p.muted.Render("  Toolchain sanity check"))
	fmt.Fprintln(p.out, versionStr)
	fmt.Fprintln(p.out)
}
