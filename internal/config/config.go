// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"runtime"
	"strings"

	"golang.org/x/xerrors"

	"github.com/backmassage/hashname/internal/hashing"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Inputs are the positional arguments: literal paths or glob patterns.
	Inputs []string

	// Naming.
	Algorithm hashing.Algorithm // Default: "blake3".
	Encoding  hashing.Encoding  // Default: "hex".

	// Traversal.
	ExpandGlobs    bool // Default: true. Cleared by --no-glob.
	FollowSymlinks bool // Follow symlinked directories (cycle-guarded).
	Jobs           int  // Default: number of CPUs.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	Quiet     bool      // Hide per-file "Renamed" lines.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check self-test and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Algorithm:      hashing.BLAKE3,
		Encoding:       hashing.EncodingHex,
		ExpandGlobs:    true,
		FollowSymlinks: false,
		Jobs:           runtime.NumCPU(),
		DryRun:         false,
		Verbose:        false,
		Quiet:          false,
		ColorMode:      ColorAuto,
		CheckOnly:      false,
	}
}

// NormalizeInput strips trailing slashes from a literal path argument.
// A path made only of slashes becomes "/". Glob patterns are returned as
// given, since a trailing slash there restricts matches to directories.
func NormalizeInput(path string) string {
	if path == "" || strings.ContainsAny(path, `*?[\`) {
		return path
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Validate checks that enum fields hold valid values and, when not in
// CheckOnly mode, that at least one input was given.
func (c *Config) Validate() error {
	if !c.Algorithm.Valid() {
		return xerrors.New("invalid algorithm (use 'sha256', 'blake3' or 'xxh3')")
	}
	if !c.Encoding.Valid() {
		return xerrors.New("invalid encoding (use 'hex' or 'base32')")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return xerrors.New("invalid color mode")
	}
	if c.Jobs < 1 {
		return xerrors.New("jobs must be at least 1")
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Inputs) == 0 {
		return ErrNoInputs
	}
	return nil
}
