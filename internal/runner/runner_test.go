package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*ShellRunner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &ShellRunner{
		Dir:    t.TempDir(),
		Stdin:  &bytes.Buffer{},
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestShellRunner_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r, stdout, _ := newTestRunner(t)

	// --- Act ---
	err := r.Run(context.Background(), "echo collected 3 items && true")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "collected 3 items\n", stdout.String())
}

func TestShellRunner_StreamsStderr(t *testing.T) {
	t.Parallel()

	r, stdout, stderr := newTestRunner(t)

	err := r.Run(context.Background(), "echo warning >&2")

	require.NoError(t, err)
	require.Empty(t, stdout.String())
	require.Equal(t, "warning\n", stderr.String())
}

func TestShellRunner_NonZeroExit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		command      string
		expectedCode int
	}{
		{name: "false builtin", command: "false", expectedCode: 1},
		{name: "explicit exit status", command: "exit 3", expectedCode: 3},
		{name: "last command decides", command: "true; exit 5", expectedCode: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, _, _ := newTestRunner(t)

			err := r.Run(context.Background(), tc.command)

			var cmdErr *CommandError
			require.True(t, errors.As(err, &cmdErr), "expected *CommandError, got %v", err)
			require.Equal(t, tc.expectedCode, cmdErr.ExitCode)
			require.Equal(t, tc.command, cmdErr.Command)
		})
	}
}

func TestShellRunner_ParseErrorSpawnsNothing(t *testing.T) {
	t.Parallel()

	r, stdout, _ := newTestRunner(t)

	err := r.Run(context.Background(), "echo start; (echo unterminated")

	require.Error(t, err)
	var cmdErr *CommandError
	require.False(t, errors.As(err, &cmdErr))
	require.Empty(t, stdout.String(), "nothing should run when the command does not parse")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate("pytest --cov=. --cov-report=term-missing -v"))
	require.Error(t, Validate("pytest -v |"))
}

func TestShellRunner_ExternalProcess(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX sh binary")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}

	t.Run("runs in the configured directory", func(t *testing.T) {
		t.Parallel()

		// --- Arrange ---
		r, stdout, _ := newTestRunner(t)
		expectedDir, err := filepath.EvalSymlinks(r.Dir)
		require.NoError(t, err)

		// --- Act ---
		err = r.Run(context.Background(), "sh -c 'pwd -P'")

		// --- Assert ---
		require.NoError(t, err)
		require.Equal(t, expectedDir, strings.TrimSpace(stdout.String()))
	})

	t.Run("reports the child's exit status", func(t *testing.T) {
		t.Parallel()

		r, _, stderr := newTestRunner(t)

		err := r.Run(context.Background(), "sh -c 'echo failing >&2; exit 4'")

		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr), "expected *CommandError, got %v", err)
		require.Equal(t, 4, cmdErr.ExitCode)
		require.Equal(t, "failing\n", stderr.String())
	})
}
