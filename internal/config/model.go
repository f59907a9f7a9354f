// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"

	"github.com/specialistvlad/covrunner/internal/preset"
)

// DefaultFile is the project configuration file looked up in the project root.
const DefaultFile = "covrunner.hcl"

// DefaultMarker is the file that identifies the project root.
const DefaultMarker = "main.py"

// Model holds the project settings after loading.
type Model struct {
	// Marker must exist in the project root before anything runs.
	Marker string
	// Tool is the shell fragment that starts the test runner.
	Tool string
	// Source is passed to --cov.
	Source string
	// Args are appended to every preset command.
	Args []string
}

// Default returns the settings used when no configuration file exists.
func Default() *Model {
	s := preset.DefaultSettings()
	return &Model{
		Marker: DefaultMarker,
		Tool:   s.Tool,
		Source: s.Source,
	}
}

// PresetSettings converts the model into the inputs of preset.Table.
func (m *Model) PresetSettings() preset.Settings {
	return preset.Settings{
		Tool:   m.Tool,
		Source: m.Source,
		Args:   m.Args,
	}
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration at path. A missing file is not an error;
	// the loader returns Default() instead.
	Load(ctx context.Context, path string) (*Model, error)
}
