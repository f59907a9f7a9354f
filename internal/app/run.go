package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/covrunner/internal/ctxlog"
	"github.com/specialistvlad/covrunner/internal/fsutil"
	"github.com/specialistvlad/covrunner/internal/menu"
	"github.com/specialistvlad/covrunner/internal/preset"
)

const ruleWidth = 50

// Run selects a preset, checks the working directory, and runs the preset's
// command once. Exactly one command is spawned per call, and none when an
// error is returned before the command starts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintln(a.outW, a.term.String("Test Coverage Runner").Bold().String())
	fmt.Fprintln(a.outW, rule())

	if a.config.List {
		menu.Render(a.outW, a.presets)
		return nil
	}

	key := a.config.Option
	if key == "" {
		a.logger.Debug("No option given, prompting.")
		var err error
		if key, err = menu.Ask(a.in, a.outW, a.presets); err != nil {
			return err
		}
	}
	a.logger.Debug("Option selected.", "key", key)

	if err := fsutil.RequireFile(a.config.Dir, a.settings.Marker); err != nil {
		return fmt.Errorf("%w: %w", ErrWrongDirectory, err)
	}

	p, err := preset.Lookup(a.presets, key)
	if err != nil {
		return err
	}
	if p, err = p.WithArgs(a.config.ExtraArgs); err != nil {
		return err
	}

	fmt.Fprintln(a.outW)
	fmt.Fprintln(a.outW, a.term.String(p.Description).Bold().String())
	fmt.Fprintln(a.outW, rule())

	if a.config.DryRun {
		fmt.Fprintf(a.outW, "Would run: %s\n", p.Command)
		return nil
	}

	a.logger.Info("Running preset.", "key", p.Key, "command", p.Command)
	if err := a.runner.Run(ctx, p.Command); err != nil {
		fmt.Fprintf(a.outW, "Error running: %s\n", p.Command)
		fmt.Fprintln(a.outW, "\n"+a.term.String("Some tests failed!").Foreground(a.term.Color("1")).String())
		return fmt.Errorf("%w: %w", ErrChecksFailed, err)
	}

	a.printReports(p)
	fmt.Fprintln(a.outW, "\n"+a.term.String("Tests completed successfully!").Foreground(a.term.Color("2")).String())
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printReports(p preset.Preset) {
	switch len(p.Reports) {
	case 0:
	case 1:
		fmt.Fprintf(a.outW, "\nReport generated: %s\n", p.Reports[0])
	default:
		fmt.Fprintln(a.outW, "\nReports generated:")
		for _, r := range p.Reports {
			fmt.Fprintf(a.outW, "  - %s\n", r)
		}
	}
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}
