package rename

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/hashname/internal/hashing"
	"github.com/backmassage/hashname/internal/naming"
)

// Processor runs one file through the full rename: hash its content,
// derive the target name, claim the target, rename. It holds no per-file
// state and is safe for concurrent use; all cross-file coordination goes
// through the shared Guard.
type Processor struct {
	fs       afero.Fs
	hasher   *hashing.Computer
	encoding hashing.Encoding
	guard    *naming.Guard
	renamer  *Renamer
}

// NewProcessor wires the stages together. guard must be shared by every
// Processor of a run.
func NewProcessor(fs afero.Fs, hasher *hashing.Computer, enc hashing.Encoding, guard *naming.Guard, renamer *Renamer) *Processor {
	return &Processor{
		fs:       fs,
		hasher:   hasher,
		encoding: enc,
		guard:    guard,
		renamer:  renamer,
	}
}

// Process renames path to its content-addressed name and returns exactly
// one Outcome. It never panics on I/O errors.
func (p *Processor) Process(path string) Outcome {
	fi, err := p.fs.Stat(path)
	if err != nil {
		return Failed(path, "", &ReadError{Path: path, Err: err})
	}
	if !fi.Mode().IsRegular() {
		return Skipped(path, "", ReasonNotRegular)
	}

	digest, n, err := p.hasher.Compute(path)
	if err != nil {
		return Failed(path, "", &ReadError{Path: path, Err: err})
	}

	target := naming.TargetPath(path, digest.Format(p.encoding))

	var o Outcome
	switch {
	case filepath.Clean(target) == filepath.Clean(path):
		o = Skipped(path, target, ReasonAlreadyNamed)
	case !p.guard.Claim(target):
		o = Skipped(path, target, ReasonTargetExists)
	default:
		o = p.renamer.Execute(path, target)
	}
	o.Bytes = n
	return o
}
