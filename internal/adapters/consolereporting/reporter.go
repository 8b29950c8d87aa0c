/*
Package consolereporting prints warnings and deprecation notices to stderr.
*/
package consolereporting

import (
	"fmt"
	"io"
	"os"

	"github.com/odoliveira/aliasloader/internal/core/ports"
	"github.com/odoliveira/aliasloader/internal/handlers/ui"
)

// Reporter implements the ports.Reporter interface on top of a writer,
// normally stderr.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to stderr.
func NewReporter() ports.Reporter {
	return &Reporter{out: os.Stderr}
}

// NewReporterTo creates a reporter writing to the given writer.
func NewReporterTo(out io.Writer) ports.Reporter {
	return &Reporter{out: out}
}

// Warning implements the ports.Reporter interface.
func (r *Reporter) Warning(message string) {
	fmt.Fprintln(r.out, ui.WarningColor("Warning: "+message))
}

// Deprecation implements the ports.Reporter interface.
func (r *Reporter) Deprecation(message string) {
	fmt.Fprintln(r.out, ui.WarningColor("Deprecation: "+message))
}
