package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestRootCommandReferenceRun(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Primes found: 78498\n", out)
}

func TestRunCommandLimit(t *testing.T) {
	out, err := execute(t, "run", "--limit", "100")
	require.NoError(t, err)
	assert.Equal(t, "Primes found: 25\n", out)
}

func TestRunCommandNegativeLimit(t *testing.T) {
	_, err := execute(t, "run", "--limit", "-3")
	assert.Error(t, err)
}

func TestBenchCommandSingleLimit(t *testing.T) {
	out, err := execute(t, "bench", "--limit", "1000", "--runs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "168")
	assert.Contains(t, out, "Candidates/s")
}

func TestSnapshotAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.snap")

	out, err := execute(t, "snapshot", "--limit", "1000", "--out", path, "--compression", "s2")
	require.NoError(t, err)
	assert.Contains(t, out, "count=168")

	out, err = execute(t, "verify", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: limit=1000 count=168")
}

func TestVerifyRejectsCorruptedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primes.snap")

	_, err := execute(t, "snapshot", "--limit", "1000", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0x01
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = execute(t, "verify", path)
	assert.Error(t, err)
}

func TestSnapshotRejectsUnknownCompression(t *testing.T) {
	_, err := execute(t, "snapshot", "--compression", "gzip", "--out", filepath.Join(t.TempDir(), "x.snap"))
	assert.Error(t, err)
}
