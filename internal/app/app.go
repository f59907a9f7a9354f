package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/specialistvlad/covrunner/internal/config"
	"github.com/specialistvlad/covrunner/internal/ctxlog"
	"github.com/specialistvlad/covrunner/internal/preset"
	"github.com/specialistvlad/covrunner/internal/runner"
)

var (
	// ErrInvalidConfig wraps configuration file and preset table errors.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrWrongDirectory is returned when the project marker is missing.
	ErrWrongDirectory = errors.New("run covrunner from the project root")
	// ErrInvalidOption is returned when the selected key matches no preset.
	ErrInvalidOption = preset.ErrInvalidOption
	// ErrChecksFailed is returned when the test command exits non-zero.
	ErrChecksFailed = errors.New("some checks failed")
)

// Runner executes a command string and reports whether it succeeded.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in       io.Reader
	outW     io.Writer
	term     *termenv.Output
	logger   *slog.Logger
	config   *Config
	settings *config.Model
	presets  []preset.Preset
	runner   Runner
}

// NewApp is the constructor for the main application. User-facing output
// goes to outW, logs to logW, and the interactive prompt reads from in.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader, r Runner) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	presets, err := preset.Table(settings.PresetSettings())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, p := range presets {
		if err := runner.Validate(p.Command); err != nil {
			return nil, fmt.Errorf("%w: preset %s: %w", ErrInvalidConfig, p.Key, err)
		}
	}
	logger.Debug("Preset table built.", "count", len(presets), "marker", settings.Marker)

	return &App{
		in:       in,
		outW:     outW,
		term:     termenv.NewOutput(outW),
		logger:   logger,
		config:   appConfig,
		settings: settings,
		presets:  presets,
		runner:   r,
	}, nil
}

// Presets returns the preset table built from the project configuration.
func (a *App) Presets() []preset.Preset {
	return a.presets
}
