// Package menu renders the preset list and reads the user's choice when no
// option is given on the command line.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/covrunner/internal/preset"
)

// Render writes the numbered list of presets to w.
func Render(w io.Writer, presets []preset.Preset) {
	fmt.Fprintln(w, "\nAvailable options:")
	for _, p := range presets {
		fmt.Fprintf(w, "%s. %s\n", p.Key, p.Name)
	}
}

// Ask shows the menu on w and reads a single line from r. The returned key is
// trimmed; end of input without a line yields an empty key.
func Ask(r io.Reader, w io.Writer, presets []preset.Preset) (string, error) {
	Render(w, presets)
	fmt.Fprintf(w, "\nChoose an option (%s): ", keyRange(presets))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read option: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func keyRange(presets []preset.Preset) string {
	switch len(presets) {
	case 0:
		return ""
	case 1:
		return presets[0].Key
	}
	return presets[0].Key + "-" + presets[len(presets)-1].Key
}
