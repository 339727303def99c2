package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// PatternError reports a syntactically invalid glob pattern. Only that input
// is abandoned.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// DirectoryReadError reports a directory that could not be listed. Traversal
// continues with its siblings.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error { return e.Err }

// InputError reports a literal input that could not be resolved (only
// possible when glob expansion is disabled).
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ReadError reports a file whose content could not be fully read for hashing.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ExecutionError reports a rename syscall that failed after a successful
// claim.
type ExecutionError struct {
	From, To string
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Failure classes reported in Outcome.Reason. Checked in order by Classify.
const (
	ClassCrossDevice = "cross-device"
	ClassPermission  = "permission denied"
	ClassVanished    = "source vanished"
	ClassIsDirectory = "is a directory"
	ClassReadFailed  = "read failed"
	ClassOther       = "other"
)

// Classify maps err to a short failure class for reporting.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, syscall.EXDEV):
		return ClassCrossDevice
	case errors.Is(err, fs.ErrPermission):
		return ClassPermission
	case errors.Is(err, fs.ErrNotExist):
		return ClassVanished
	case errors.Is(err, syscall.EISDIR):
		return ClassIsDirectory
	}
	var re *ReadError
	if errors.As(err, &re) {
		return ClassReadFailed
	}
	return ClassOther
}
