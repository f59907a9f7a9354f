package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/covrunner/internal/ctxlog"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// CommandError reports a command that ran but exited with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// ShellRunner runs command strings through an in-process shell interpreter.
// External programs it starts inherit Stdin, Stdout and Stderr.
type ShellRunner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Validate reports whether command is syntactically valid shell.
func Validate(command string) error {
	_, err := parse(command)
	return err
}

func parse(command string) (*syntax.File, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", command, err)
	}
	return file, nil
}

// Run executes command and blocks until it finishes. A nil error means the
// command exited with status zero; a non-zero status is a *CommandError.
func (r *ShellRunner) Run(ctx context.Context, command string) error {
	logger := ctxlog.FromContext(ctx)

	file, err := parse(command)
	if err != nil {
		return err
	}

	opts := []interp.RunnerOption{
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	}
	if r.Dir != "" {
		opts = append(opts, interp.Dir(r.Dir))
	}
	sh, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to set up shell interpreter: %w", err)
	}

	logger.Debug("Executing command.", "command", command, "dir", r.Dir)
	err = sh.Run(ctx, file)
	if status, ok := interp.IsExitStatus(err); ok {
		logger.Debug("Command exited with non-zero status.", "command", command, "status", status)
		return &CommandError{Command: command, ExitCode: int(status)}
	}
	if err != nil {
		return fmt.Errorf("failed to run command %q: %w", command, err)
	}
	logger.Debug("Command finished successfully.", "command", command)
	return nil
}
