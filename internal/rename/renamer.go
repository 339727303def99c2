package rename

import (
	"github.com/spf13/afero"
)

// Renamer moves a file to its claimed target. It never retries and never
// overwrites: Execute must only be called after the target was claimed.
type Renamer struct {
	fs     afero.Fs
	dryRun bool
}

// NewRenamer returns a Renamer over fs. With dryRun set, Execute reports
// what it would do without touching the filesystem.
func NewRenamer(fs afero.Fs, dryRun bool) *Renamer {
	return &Renamer{fs: fs, dryRun: dryRun}
}

// Execute renames from to to and returns Renamed or Failed.
func (r *Renamer) Execute(from, to string) Outcome {
	if r.dryRun {
		o := Renamed(from, to)
		o.DryRun = true
		return o
	}
	if err := r.fs.Rename(from, to); err != nil {
		return Failed(from, to, &ExecutionError{From: from, To: to, Err: err})
	}
	return Renamed(from, to)
}
