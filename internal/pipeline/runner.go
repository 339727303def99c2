package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/hashname/internal/config"
	"github.com/backmassage/hashname/internal/display"
	"github.com/backmassage/hashname/internal/hashing"
	"github.com/backmassage/hashname/internal/logging"
	"github.com/backmassage/hashname/internal/naming"
	"github.com/backmassage/hashname/internal/rename"
)

// Report is everything a run produced.
type Report struct {
	Outcomes    []rename.Outcome // One per processed file, in discovery order.
	InputErrors []error
	Stats       RunStats
	Interrupted bool // The context was cancelled before every file was dispatched.
}

// ExitCode maps the report to the process exit status: 0 when every file
// was renamed or skipped and every input resolved, 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Interrupted || !r.Stats.Clean() {
		return 1
	}
	return 0
}

// Run is the top-level batch entry point. It expands cfg.Inputs against
// fsys, renames every discovered file with up to cfg.Jobs workers, logs each
// outcome and the summary, and returns the report.
func Run(ctx context.Context, cfg *config.Config, fsys afero.Fs, log *logging.Logger) Report {
	start := time.Now()
	var report Report

	files := discover(cfg, fsys, log, &report)
	report.Stats.Total = len(files)

	if len(files) == 0 {
		log.Warn("No files matched")
	} else {
		log.Info("Found %s", display.Count(len(files), "file", "files"))
		logBatchHeader(cfg, log)
	}

	proc := rename.NewProcessor(fsys,
		hashing.NewComputer(fsys, cfg.Algorithm),
		cfg.Encoding,
		naming.NewGuard(fsys),
		rename.NewRenamer(fsys, cfg.DryRun))

	outcomes := make([]rename.Outcome, len(files))
	done := make([]bool, len(files))

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, path := range files {
		i, path := i, path // per-iteration copies (go 1.21 loop semantics)
		if ctx.Err() != nil {
			report.Interrupted = true
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			o := proc.Process(path)
			outcomes[i] = o
			done[i] = true
			logOutcome(cfg, log, o)
			return nil
		})
	}
	_ = g.Wait() // workers report through outcomes, never through errors

	for i, o := range outcomes {
		if !done[i] {
			report.Interrupted = true
			continue
		}
		report.Outcomes = append(report.Outcomes, o)
		report.Stats.Add(o)
	}
	if report.Interrupted {
		log.Warn("Interrupted")
	}

	report.Stats.Elapsed = time.Since(start)
	logSummary(cfg, log, &report)
	return report
}

// discover expands every input in parallel, logs input errors and skipped
// links, and returns the file list in input order with each underlying file
// listed once.
func discover(cfg *config.Config, fsys afero.Fs, log *logging.Logger, report *Report) []string {
	opts := ExpandOptions{ExpandGlobs: cfg.ExpandGlobs, FollowSymlinks: cfg.FollowSymlinks}
	expansions := make([]Expansion, len(cfg.Inputs))

	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, input := range cfg.Inputs {
		i, input := i, input // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			expansions[i] = Expand(fsys, input, opts)
			return nil
		})
	}
	_ = g.Wait()

	index := make(map[string]int) // fileKey → position in files
	var files []string
	for _, exp := range expansions {
		for _, err := range exp.Errors {
			log.Error("%v", err)
			report.InputErrors = append(report.InputErrors, err)
		}
		for _, link := range exp.SkippedLinks {
			log.Debug(cfg.Verbose, "Not following symlinked directory: %s", link)
		}
		report.Stats.SkippedLinks += len(exp.SkippedLinks)
		if len(exp.Files) == 0 && len(exp.Errors) == 0 {
			log.Debug(cfg.Verbose, "No matches: %s", exp.Input)
		}
		for _, f := range exp.Files {
			key := fileKey(fsys, f)
			i, dup := index[key]
			if !dup {
				index[key] = len(files)
				files = append(files, f)
				continue
			}
			// Rename the file itself rather than a link pointing at it.
			if isSymlink(fsys, files[i]) && !isSymlink(fsys, f) {
				files[i], f = f, files[i]
			}
			log.Debug(cfg.Verbose, "Same file as %s: %s", files[i], f)
		}
	}
	report.Stats.InputErrors = len(report.InputErrors)
	return files
}

// logOutcome writes one line per processed file. Renamed lines are hidden
// in quiet mode; skips and failures are always shown.
func logOutcome(cfg *config.Config, log *logging.Logger, o rename.Outcome) {
	switch o.Status {
	case rename.StatusRenamed:
		if cfg.Quiet {
			return
		}
		if o.DryRun {
			log.Success("[DRY] Would rename: %s -> %s", o.From, filepath.Base(o.To))
			return
		}
		log.Success("Renamed: %s -> %s", o.From, filepath.Base(o.To))
	case rename.StatusSkipped:
		if o.Reason == rename.ReasonAlreadyNamed {
			log.Info("Skip (%s): %s", o.Reason, o.From)
			return
		}
		if o.To != "" {
			log.Warn("Skip (%s): %s -> %s", o.Reason, o.From, filepath.Base(o.To))
			return
		}
		log.Warn("Skip (%s): %s", o.Reason, o.From)
	case rename.StatusFailed:
		log.Error("Failed (%s): %v", o.Reason, o.Err)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger) {
	log.Info("Algorithm: %s, encoding: %s, workers: %d", cfg.Algorithm, cfg.Encoding, cfg.Jobs)
	if !cfg.ExpandGlobs {
		log.Info("Glob expansion: off (literal paths)")
	}
	if cfg.FollowSymlinks {
		log.Info("Symlinked directories: followed")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, report *Report) {
	s := &report.Stats
	log.Info("==============================")
	log.Info("Done: %d renamed, %d skipped, %d failed", s.Renamed, s.Skipped, s.Failed)
	log.Info("Summary report:")
	log.Info("  Total files processed: %d of %d", s.Processed(), s.Total)
	log.Info("  Hashed: %s with %s (%s)",
		display.FormatBytes(s.BytesHashed), cfg.Algorithm,
		display.FormatThroughput(s.BytesHashed, s.Elapsed))
	if cfg.DryRun {
		log.Info("  Dry run: nothing was renamed")
	}
	if s.SkippedLinks > 0 {
		log.Info("  Symlinked directories not followed: %d", s.SkippedLinks)
	}

	if s.InputErrors > 0 {
		log.Error("  Input errors: %d", s.InputErrors)
		for _, err := range report.InputErrors {
			log.Error("    %v", err)
		}
	}
	if s.Failed > 0 {
		log.Error("  Failures: %d", s.Failed)
		for _, o := range report.Outcomes {
			if o.Status == rename.StatusFailed {
				log.Error("    %s (%s)", o.From, o.Reason)
			}
		}
	}
	if s.Clean() && !report.Interrupted {
		log.Success("  All files accounted for")
	}
}
