package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/covrunner/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("covrunner", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
covrunner - run the project's tests with a predefined coverage preset.

Usage:
  covrunner [options] [OPTION [TOOL_ARGS...]]

Arguments:
  OPTION
    Preset to run. Prompts interactively when omitted.
      1  plain tests
      2  tests with coverage
      3  tests with coverage + HTML report
      4  tests with coverage + XML report
      5  full run (HTML + XML + terminal)
  TOOL_ARGS
    Extra arguments passed to the test tool after the preset flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", ".", "Project root. The marker file must exist here.")
	configFlag := flagSet.String("config", "", "Path to the HCL project file (default: <dir>/covrunner.hcl).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "Print the available presets and exit.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the selected command instead of running it.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var option string
	var extra []string
	if flagSet.NArg() > 0 {
		option = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		extra = flagSet.Args()[1:]
	}
	slog.Debug("Option determined.", "option", option, "extra_args", extra)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Option:     option,
		ExtraArgs:  extra,
		Dir:        *dirFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		List:       *listFlag,
		DryRun:     *dryRunFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
