package hashing

import (
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Computer hashes whole files read through an afero.Fs.
type Computer struct {
	fs   afero.Fs
	algo Algorithm
}

// NewComputer returns a Computer for algo over fs.
func NewComputer(fs afero.Fs, algo Algorithm) *Computer {
	return &Computer{fs: fs, algo: algo}
}

// Algorithm returns the configured algorithm.
func (c *Computer) Algorithm() Algorithm { return c.algo }

// Compute reads the entire file at path into memory and returns its digest
// along with the number of bytes hashed.
func (c *Computer) Compute(path string) (Digest, int64, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, 0, xerrors.Errorf("%s digest: %w", c.algo, err)
	}
	return c.algo.Sum(data), int64(len(data)), nil
}
