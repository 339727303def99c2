package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into naming, traversal, behavior, display, and utility.
// Negated flags (e.g. --no-glob) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/backmassage/hashname/internal/hashing"
)

// Sentinel errors returned by ParseFlags. ErrHelp and ErrVersion mean the
// requested text was already printed and the caller should exit successfully.
var (
	ErrHelp     = xerrors.New("help requested")
	ErrVersion  = xerrors.New("version requested")
	ErrNoInputs = xerrors.New("need at least one path or pattern")
	ErrEmptyArg = xerrors.New("empty path or pattern")
)

// ParseFlags parses args (without the program name) into cfg. Help and
// version text go to out. On --help or --version it returns ErrHelp or
// ErrVersion; on a bad flag or missing inputs it returns another error.
// It never touches the filesystem.
func ParseFlags(cfg *Config, args []string, version string, out io.Writer) error {
	fs := flag.NewFlagSet("hashname", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineNamingFlags(fs, cfg)
	defineTraversalFlags(fs, cfg, &negated)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintUsage(out, version)
			return ErrHelp
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		PrintUsage(out, version)
		return ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(out, "hashname v"+version)
		return ErrVersion
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noGlob -> ExpandGlobs=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noGlob      bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineNamingFlags registers -a/--algo and -e/--encoding.
func defineNamingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&algorithmValue{&cfg.Algorithm}, "algo", "Hash algorithm: sha256 | blake3 | xxh3")
	fs.Var(&algorithmValue{&cfg.Algorithm}, "a", "Same as --algo")
	fs.Var(&encodingValue{&cfg.Encoding}, "encoding", "Digest text: hex | base32")
	fs.Var(&encodingValue{&cfg.Encoding}, "e", "Same as --encoding")
}

// defineTraversalFlags registers --no-glob, -L/--follow-symlinks, -j/--jobs.
func defineTraversalFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noGlob, "no-glob", false, "Treat arguments as literal paths")
	fs.BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "Recurse into symlinked directories")
	fs.BoolVar(&cfg.FollowSymlinks, "L", false, "Same as --follow-symlinks")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "Parallel workers")
	fs.IntVar(&cfg.Jobs, "j", cfg.Jobs, "Same as --jobs")
}

// defineBehaviorFlags registers -d/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, quiet, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only report skips, failures and the summary")
	fs.BoolVar(&cfg.Quiet, "Q", false, "Same as --quiet")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run hash self-test and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noGlob {
		cfg.ExpandGlobs = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Inputs from the positional args when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) == 0 {
		return ErrNoInputs
	}
	inputs := make([]string, len(args))
	for i, a := range args {
		if strings.TrimSpace(a) == "" {
			return xerrors.Errorf("argument %d: %w", i+1, ErrEmptyArg)
		}
		inputs[i] = NormalizeInput(a)
	}
	cfg.Inputs = inputs
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "hashname v" + version + " - rename files after the hash of their content"},
		{"", ""},
		{"  hashname [OPTIONS] <path|pattern>...", ""},
		{"", ""},
		{"Naming", ""},
		{"  -a, --algo <name>", "sha256 | blake3 | xxh3 (default: blake3)"},
		{"  -e, --encoding <name>", "hex | base32 (default: hex)"},
		{"", ""},
		{"Traversal", ""},
		{"  --no-glob", "Treat arguments as literal paths"},
		{"  -L, --follow-symlinks", "Recurse into symlinked directories"},
		{"  -j, --jobs <n>", "Parallel workers (default: CPU count)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; do not rename"},
		{"  -Q, --quiet", "Only report skips, failures and the summary"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Self-test every hash algorithm"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (Algorithm, Encoding) with flag.Var.

type algorithmValue struct{ p *hashing.Algorithm }

func (a *algorithmValue) String() string {
	if a.p == nil {
		return ""
	}
	return string(*a.p)
}

func (a *algorithmValue) Set(s string) error {
	v, err := hashing.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*a.p = v
	return nil
}

type encodingValue struct{ p *hashing.Encoding }

func (e *encodingValue) String() string {
	if e.p == nil {
		return ""
	}
	return string(*e.p)
}

func (e *encodingValue) Set(s string) error {
	v, err := hashing.ParseEncoding(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*e.p = v
	return nil
}
