// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI tests that exercise command parsing,
// flag handling and output formatting in-process against the real
// validator. The commands are run through the root command with the
// output writer swapped, so the tests see exactly what a user would.
//
// Each run builds a fresh command tree via NewRootCmd, which rebinds
// the flag variables to their defaults, so no flag or config state
// leaks between tests.

package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/mikrolab/nomen/internal/config"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with args, returning captured output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg = &config.Config{}

	var buf bytes.Buffer
	SetOut(&buf)
	defer SetOut(os.Stdout)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return buf.String(), err
}

// isolate points HOME and the working directory at temp dirs so tests
// never read or write the developer's real config and logs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

// mustRun executes the CLI and fails the test on error.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCommand(t, args...)
	require.NoError(t, err)
	return out
}
