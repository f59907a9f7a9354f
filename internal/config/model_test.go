package config

import (
	"testing"

	"github.com/specialistvlad/covrunner/internal/preset"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	m := Default()

	require.Equal(t, "main.py", m.Marker)
	require.Equal(t, preset.DefaultSettings(), m.PresetSettings())
}
