// Package rename performs the content-addressed rename of a single file and
// reports exactly one Outcome for it.
//
// A Processor runs one file through hash → target name → claim → rename.
// A Renamer performs the filesystem move itself and never retries. The
// error types in errors.go cover every non-success path: failed reads and
// renames become Failed outcomes, while bad patterns, unreadable
// directories and missing literal inputs are reported per input by the
// pipeline.
package rename
