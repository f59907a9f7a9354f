package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/covrunner/internal/app"
	"github.com/specialistvlad/covrunner/internal/cli"
	"github.com/specialistvlad/covrunner/internal/hcl"
	"github.com/specialistvlad/covrunner/internal/runner"
)

// main is the entrypoint for the covrunner application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	r := &runner.ShellRunner{
		Dir:    appConfig.Dir,
		Stdin:  inR,
		Stdout: outW,
		Stderr: errW,
	}
	covrunner, err := app.NewApp(inR, outW, errW, appConfig, hcl.NewLoader(), r)
	if err != nil {
		return err
	}

	return covrunner.Run(context.Background())
}

// exitCode maps an error returned by run to the process exit status.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, app.ErrInvalidConfig):
		return 2
	default:
		return 1
	}
}
