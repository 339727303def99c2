package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/hashname/internal/config"
	"github.com/backmassage/hashname/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "hashname.log")
	var out, errOut bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
}

func TestLogger_ErrorGoesToErrWriter(t *testing.T) {
	cfg := config.DefaultConfig()
	var out, errOut bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Warn("careful")
	l.Error("broken %d", 7)

	assert.Contains(t, out.String(), "[WARN] careful")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "[ERROR] broken 7")
}

func TestLogger_DebugGated(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &out)
	require.NoError(t, err)

	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}

func TestLogger_ConcurrentLinesStayWhole(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &out)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Success("worker %d done", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Contains(t, line, "[SUCCESS] worker ")
	}
}

func TestLogger_ColorOnConsolePlainInFile(t *testing.T) {
	term.Configure(config.ColorAlways, nil)
	t.Cleanup(func() { term.Configure(config.ColorNever, nil) })

	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")
	var out, errOut bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	require.NoError(t, err)
	l.Success("done")
	require.NoError(t, l.Close())

	assert.Contains(t, out.String(), term.Green+"[SUCCESS]"+term.NC+" done")
	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\033[")
	assert.Contains(t, string(b), "[SUCCESS] done")
}
