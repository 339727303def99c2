// Package term holds the ANSI color state shared by logging and display.
//
// Colors are package-level strings set once by [Configure]. When colors are
// disabled every code is empty, so concatenating them is a no-op.
package term

import (
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/backmassage/hashname/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// palette maps each color variable to its bold, bright escape sequence.
var palette = []struct {
	dst  *string
	code string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Blue, "\033[1;94m"},
	{&Cyan, "\033[1;96m"},
	{&Magenta, "\033[1;95m"},
	{&NC, "\033[0m"},
}

// Configure decides whether out gets colors under mode and sets the
// package-level codes accordingly. Called once from [logging.NewLogger].
func Configure(mode config.ColorMode, out *os.File) {
	set(Wanted(mode, IsTerminal(out), os.Getenv))
}

func set(on bool) {
	for _, p := range palette {
		if on {
			*p.dst = p.code
		} else {
			*p.dst = ""
		}
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// Wanted resolves mode to on/off. In auto mode colors need a terminal, an
// unset NO_COLOR (https://no-color.org) and a TERM other than "dumb".
func Wanted(mode config.ColorMode, tty bool, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	return tty && strings.ToLower(getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
