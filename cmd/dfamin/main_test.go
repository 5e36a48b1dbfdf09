package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/dfamin/codec"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRun(t *testing.T) {
	t.Run("reduces states", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "min.json")
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

		code := run([]string{"-in", "testdata/dfa.yaml", "-out", out}, stdout, stderr)
		require.Equal(t, exitOK, code, stderr.String())

		assert.Contains(t, stdout.String(), "Input:")
		assert.Contains(t, stdout.String(), "Reduced number of states from 4 to 2.")
		assert.Contains(t, stdout.String(), "Output:")

		d, err := codec.LoadFile(out)
		require.NoError(t, err)
		assert.Equal(t, 2, d.NumStates())
	})

	t.Run("already minimal", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "min.yaml")
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

		code := run([]string{"-quiet", "-in", "testdata/even.yaml", "-out", out}, stdout, stderr)
		require.Equal(t, exitOK, code, stderr.String())
		assert.Equal(t, "Input DFA already minimal.\n", stdout.String())
	})

	t.Run("first seen representatives", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "min.cbor")
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

		code := run([]string{"-quiet", "-representative", "first-seen", "-in", "testdata/reordered.yaml", "-out", out}, stdout, stderr)
		require.Equal(t, exitOK, code, stderr.String())

		d, err := codec.LoadFile(out)
		require.NoError(t, err)
		initial, _ := d.Initial()
		assert.Equal(t, "q2", string(initial))
	})

	t.Run("unwritable stdout", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "min.yaml")
		stderr := new(bytes.Buffer)

		code := run([]string{"-in", "testdata/dfa.yaml", "-out", out}, failingWriter{}, stderr)
		require.Equal(t, exitOK, code, stderr.String())
		assert.Contains(t, stderr.String(), "could not print automaton")
		assert.Contains(t, stderr.String(), "closed pipe")
		assert.FileExists(t, out)
	})

	t.Run("missing input", func(t *testing.T) {
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		code := run([]string{"-in", "testdata/nope.yaml", "-out", filepath.Join(t.TempDir(), "min.yaml")}, stdout, stderr)
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, stderr.String(), "could not read input")
		assert.Empty(t, stdout.String())
	})

	t.Run("invalid automaton", func(t *testing.T) {
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		code := run([]string{"-in", "testdata/invalid.yaml", "-out", filepath.Join(t.TempDir(), "min.yaml")}, stdout, stderr)
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, stderr.String(), "invalid automaton")
		assert.Empty(t, stdout.String())
	})

	t.Run("bad flags", func(t *testing.T) {
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		assert.Equal(t, exitUsage, run([]string{"-format", "toml"}, stdout, stderr))
		assert.Equal(t, exitUsage, run([]string{"-loglevel", "loud"}, stdout, stderr))
		assert.Equal(t, exitUsage, run([]string{"-representative", "best"}, stdout, stderr))
		assert.Equal(t, exitUsage, run([]string{"-nope"}, stdout, stderr))
	})
}
