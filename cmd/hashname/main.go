// Command hashname renames files to the hash of their content.
//
// It parses flags, validates configuration, and either runs the hash
// self-test (--check) or the discover/hash/rename pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/backmassage/hashname/internal/check"
	"github.com/backmassage/hashname/internal/config"
	"github.com/backmassage/hashname/internal/display"
	"github.com/backmassage/hashname/internal/logging"
	"github.com/backmassage/hashname/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit statuses. Per-file failures and unresolved inputs come back from
// pipeline.Report.ExitCode as exitFailure.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Bootstrap: no logger yet, so usage errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args, version, os.Stdout); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return exitOK
		}
		return usageError(err)
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashname: %v\n", err)
		return exitFailure
	}
	defer log.Close()

	if !cfg.Quiet {
		display.PrintBanner(os.Stdout)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return exitFailure
		}
		return exitOK
	}

	log.Debug(cfg.Verbose, "hashname v%s (%s)", version, commit)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	// Cancel on SIGINT/SIGTERM: files already dispatched finish their rename,
	// nothing new is started.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing files in flight…")
			cancel()
		case <-ctx.Done():
		}
	}()

	report := pipeline.Run(ctx, &cfg, afero.NewOsFs(), log)
	return report.ExitCode()
}

func usageError(err error) int {
	fmt.Fprintf(os.Stderr, "hashname: %v\n", err)
	fmt.Fprintln(os.Stderr, "Try 'hashname --help' for more information.")
	return exitUsage
}
