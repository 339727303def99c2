// Package display renders the startup banner and human-readable sizes for
// the run summary.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/hashname/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _               _
| |__   __ _ ___| |__  _ __   __ _ _ __ ___   ___
| '_ \ / _`+"`"+` / __| '_ \| '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \
| | | | (_| \__ \ | | | | | | (_| | | | | | |  __/
|_| |_|\__,_|___/_| |_|_| |_|\__,_|_| |_| |_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
