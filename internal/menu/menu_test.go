package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/covrunner/internal/preset"
	"github.com/stretchr/testify/require"
)

func defaultPresets(t *testing.T) []preset.Preset {
	t.Helper()
	presets, err := preset.Table(preset.DefaultSettings())
	require.NoError(t, err)
	return presets
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	Render(out, defaultPresets(t))

	require.Contains(t, out.String(), "Available options:")
	require.Contains(t, out.String(), "1. Plain tests\n")
	require.Contains(t, out.String(), "5. Full run (HTML + XML + terminal)\n")
}

func TestAsk(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		input       string
		expectedKey string
	}{
		{name: "Reads a single line", input: "3\n", expectedKey: "3"},
		{name: "Trims whitespace", input: "  2 \r\n", expectedKey: "2"},
		{name: "Only the first line is used", input: "4\n1\n", expectedKey: "4"},
		{name: "Input without newline", input: "5", expectedKey: "5"},
		{name: "Empty input", input: "", expectedKey: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			key, err := Ask(strings.NewReader(tc.input), out, defaultPresets(t))

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.expectedKey, key)
			require.Contains(t, out.String(), "Choose an option (1-5): ")
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("terminal closed") }

func TestAsk_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Ask(failingReader{}, &bytes.Buffer{}, defaultPresets(t))

	require.ErrorContains(t, err, "terminal closed")
}
