package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/covrunner/internal/config"
	"github.com/specialistvlad/covrunner/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	// Environ supplies the variables exposed as env.<NAME>.
	Environ func() []string
}

// NewLoader creates a Loader reading the real process environment.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load parses the file at path and overlays it on config.Default().
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.Default()

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No configuration file found, using defaults.", "path", path)
			return model, nil
		}
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed fileSchema
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if parsed.Project != nil {
		if parsed.Project.Marker != "" {
			model.Marker = parsed.Project.Marker
		}
	}
	if parsed.Tool != nil {
		if parsed.Tool.Command != "" {
			model.Tool = parsed.Tool.Command
		}
		if parsed.Tool.Source != "" {
			model.Source = parsed.Tool.Source
		}
		model.Args = parsed.Tool.Args
	}

	logger.Debug("Configuration loaded.", "path", path, "marker", model.Marker, "tool", model.Tool)
	return model, nil
}

// evalContext exposes the environment as an object named env.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	if l.Environ != nil {
		for _, kv := range l.Environ() {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" || !utf8.ValidString(value) {
				continue
			}
			vars[name] = cty.StringVal(value)
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
