package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UsageErrors(t *testing.T) {
	assert.Equal(t, exitUsage, run(nil), "no inputs")
	assert.Equal(t, exitUsage, run([]string{"--algo", "md5", "x"}))
	assert.Equal(t, exitUsage, run([]string{"--bogus"}))
	assert.Equal(t, exitUsage, run([]string{"--jobs", "0", "x"}))
	assert.Equal(t, exitUsage, run([]string{"--dry-run", ""}), "empty argument is not the root")
}

func TestRun_HelpAndVersion(t *testing.T) {
	assert.Equal(t, exitOK, run([]string{"--help"}))
	assert.Equal(t, exitOK, run([]string{"--version"}))
}

func TestRun_Check(t *testing.T) {
	assert.Equal(t, exitOK, run([]string{"--check", "--no-color", "-Q"}))
}

func TestRun_RenamesDirectoryInPlace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("abc"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b"), []byte("abc"), 0o644))

	code := run([]string{"-Q", "--no-color", "-a", "sha256", dir})
	assert.Equal(t, exitOK, code)

	_, err := os.Stat(filepath.Join(dir, "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "sub", "BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
	assert.NoError(t, err)
}

func TestRun_MissingLiteralPathFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	assert.Equal(t, exitFailure, run([]string{"-Q", "--no-color", "--no-glob", missing}))
}
