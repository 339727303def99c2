// Package logging provides the leveled console logger used by every
// command. Lines carry a timestamp and a [LEVEL] tag; the tag is colored
// when term colors are enabled. An optional log file receives the same
// lines without color codes.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/hashname/internal/config"
	"github.com/backmassage/hashname/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Writes are serialized, so workers may log concurrently.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
}

// NewLogger configures term colors from cfg and optionally opens cfg.LogFile
// for appending. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode, os.Stdout)
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with explicit console writers; ERROR lines go to
// errOut, everything else to out. It does not touch term colors.
func NewLoggerTo(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	l := &Logger{out: out, errOut: errOut, verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// level is one log severity: its tag, its color, and whether it goes to
// the error writer.
type level struct {
	tag   string
	color func() string
	toErr bool
}

// Colors are read at write time because term.Configure runs after package init.
var (
	levelInfo    = level{"INFO", func() string { return term.Blue }, false}
	levelSuccess = level{"SUCCESS", func() string { return term.Green }, false}
	levelWarn    = level{"WARN", func() string { return term.Yellow }, false}
	levelError   = level{"ERROR", func() string { return term.Red }, true}
	levelDebug   = level{"DEBUG", func() string { return term.Cyan }, false}
)

func (l *Logger) log(lv level, format string, args []interface{}) {
	text := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if lv.toErr {
		out = l.errOut
	}
	tag := "[" + lv.tag + "]"
	if c := lv.color(); c != "" {
		_, _ = io.WriteString(out, ts+" "+c+tag+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" "+tag+" "+text+"\n")
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+tag+" "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) { l.log(levelInfo, format, args) }

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) { l.log(levelSuccess, format, args) }

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) { l.log(levelWarn, format, args) }

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...interface{}) { l.log(levelError, format, args) }

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if verbose {
		l.log(levelDebug, format, args)
	}
}

// Verbose reports whether the logger was built from a verbose config.
func (l *Logger) Verbose() bool { return l.verbose }
