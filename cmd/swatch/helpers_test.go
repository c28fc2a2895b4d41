package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated settings file.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	settings := filepath.Join(t.TempDir(), "swatch.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("log:\n  level: info\n  human: false\n"), 0o644))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", settings}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
