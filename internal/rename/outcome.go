package rename

import "fmt"

// Status is the result class of one file.
type Status int

const (
	StatusRenamed Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Skip reasons.
const (
	ReasonTargetExists = "target already exists"
	ReasonAlreadyNamed = "already named by content"
	ReasonNotRegular   = "not a regular file"
)

// Outcome records what happened to one input file.
type Outcome struct {
	From   string
	To     string // Target path; empty when hashing failed.
	Status Status
	Reason string // Skip reason or failure class.
	Err    error  // Set only for StatusFailed.
	Bytes  int64  // Bytes hashed.
	DryRun bool   // Renamed outcome was not applied to disk.
}

// Renamed reports a successful move.
func Renamed(from, to string) Outcome {
	return Outcome{From: from, To: to, Status: StatusRenamed}
}

// Skipped reports a file left untouched for reason.
func Skipped(from, to, reason string) Outcome {
	return Outcome{From: from, To: to, Status: StatusSkipped, Reason: reason}
}

// Failed reports a file whose rename was abandoned because of err.
func Failed(from, to string, err error) Outcome {
	return Outcome{From: from, To: to, Status: StatusFailed, Reason: Classify(err), Err: err}
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusRenamed:
		return fmt.Sprintf("renamed %s -> %s", o.From, o.To)
	case StatusSkipped:
		return fmt.Sprintf("skipped %s (%s)", o.From, o.Reason)
	default:
		return fmt.Sprintf("failed %s: %v", o.From, o.Err)
	}
}
