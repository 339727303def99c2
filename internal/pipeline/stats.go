package pipeline

import (
	"time"

	"github.com/backmassage/hashname/internal/rename"
)

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total        int // Files dispatched to the processor.
	Renamed      int
	Skipped      int
	Failed       int
	InputErrors  int // Pattern, missing-input and directory-read errors.
	SkippedLinks int // Symlinked directories not followed.
	BytesHashed  int64
	Elapsed      time.Duration
}

// Add folds one outcome into the counters.
func (s *RunStats) Add(o rename.Outcome) {
	switch o.Status {
	case rename.StatusRenamed:
		s.Renamed++
	case rename.StatusSkipped:
		s.Skipped++
	case rename.StatusFailed:
		s.Failed++
	}
	s.BytesHashed += o.Bytes
}

// Processed returns the number of files that produced an outcome.
func (s *RunStats) Processed() int {
	return s.Renamed + s.Skipped + s.Failed
}

// Clean reports whether the run had no failures and no input errors.
// Skips are expected and do not count against it.
func (s *RunStats) Clean() bool {
	return s.Failed == 0 && s.InputErrors == 0
}
