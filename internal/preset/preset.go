// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package preset

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrInvalidOption is returned by Lookup when no preset matches the key.
var ErrInvalidOption = errors.New("invalid option")

// Preset is a named, fixed combination of test-execution flags.
type Preset struct {
	Key         string
	Name        string
	Description string
	Command     string
	// Reports lists the artifacts the tool writes on success, shown to the
	// user once the run has finished.
	Reports []string
}

// Settings parameterises the command strings. The zero value is not useful;
// start from DefaultSettings.
type Settings struct {
	Tool   string
	Source string
	Args   []string
}

// DefaultSettings matches a plain pytest + pytest-cov setup.
func DefaultSettings() Settings {
	return Settings{
		Tool:   "pytest",
		Source: ".",
	}
}

const (
	htmlReport     = "HTML: htmlcov/index.html"
	xmlReport      = "XML: coverage.xml"
	terminalReport = "Terminal: shown above"
)

// Table returns the five presets in menu order.
func Table(s Settings) ([]Preset, error) {
	tool := strings.TrimSpace(s.Tool)
	if tool == "" {
		return nil, errors.New("tool command must not be empty")
	}
	source := s.Source
	if source == "" {
		source = "."
	}
	quotedSource, err := syntax.Quote(source, syntax.LangBash)
	if err != nil {
		return nil, fmt.Errorf("cannot quote coverage source %q: %w", source, err)
	}
	cov := "--cov=" + quotedSource

	presets := []Preset{
		{
			Key:         "1",
			Name:        "Plain tests",
			Description: "Running plain tests",
			Command:     join(tool, "-v"),
		},
		{
			Key:         "2",
			Name:        "Tests with coverage",
			Description: "Running tests with coverage",
			Command:     join(tool, cov, "--cov-report=term-missing", "-v"),
		},
		{
			Key:         "3",
			Name:        "Tests with coverage + HTML report",
			Description: "Running tests with coverage + HTML report",
			Command:     join(tool, cov, "--cov-report=html", "--cov-report=term-missing", "-v"),
			Reports:     []string{htmlReport},
		},
		{
			Key:         "4",
			Name:        "Tests with coverage + XML report",
			Description: "Running tests with coverage + XML report",
			Command:     join(tool, cov, "--cov-report=xml", "--cov-report=term-missing", "-v"),
			Reports:     []string{xmlReport},
		},
		{
			Key:         "5",
			Name:        "Full run (HTML + XML + terminal)",
			Description: "Running full test suite with every report",
			Command:     join(tool, cov, "--cov-report=html", "--cov-report=xml", "--cov-report=term-missing", "-v"),
			Reports:     []string{htmlReport, xmlReport, terminalReport},
		},
	}

	if len(s.Args) > 0 {
		for i := range presets {
			if presets[i], err = presets[i].WithArgs(s.Args); err != nil {
				return nil, err
			}
		}
	}
	return presets, nil
}

// Lookup finds the preset whose key equals key exactly.
func Lookup(presets []Preset, key string) (Preset, error) {
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrInvalidOption, key)
}

// WithArgs returns a copy of p whose command has args appended, each quoted
// for the shell. With no args p is returned as is.
func (p Preset) WithArgs(args []string) (Preset, error) {
	if len(args) == 0 {
		return p, nil
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, p.Command)
	for _, arg := range args {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return Preset{}, fmt.Errorf("cannot quote argument %q: %w", arg, err)
		}
		parts = append(parts, quoted)
	}
	p.Command = join(parts...)
	p.Reports = append([]string(nil), p.Reports...)
	return p, nil
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
