package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/covrunner/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingRunner is a Runner that records the commands it receives instead
// of executing them. Err, when set, is returned from every call.
type RecordingRunner struct {
	mu       sync.Mutex
	Commands []string
	Err      error
}

// Run implements Runner.
func (r *RecordingRunner) Run(_ context.Context, command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = append(r.Commands, command)
	return r.Err
}

// Calls returns a copy of the recorded commands.
func (r *RecordingRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Commands...)
}

// StaticLoader is a config.Loader returning a fixed model.
type StaticLoader struct {
	Model *config.Model
	Err   error
}

// Load implements config.Loader.
func (l StaticLoader) Load(context.Context, string) (*config.Model, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	if l.Model == nil {
		return config.Default(), nil
	}
	return l.Model, nil
}

// TestApp bundles an App with the buffers and runner it was built with.
type TestApp struct {
	App    *App
	Out    *SafeBuffer
	Logs   *SafeBuffer
	Runner *RecordingRunner
}

// SetupAppTest creates an App rooted in a fresh temporary project directory.
// The marker file is created unless withMarker is false. stdin feeds the
// interactive prompt.
func SetupAppTest(t *testing.T, appConfig Config, withMarker bool, stdin string) *TestApp {
	t.Helper()

	if appConfig.Dir == "" {
		appConfig.Dir = t.TempDir()
	}
	if withMarker {
		if err := os.WriteFile(filepath.Join(appConfig.Dir, config.DefaultMarker), nil, 0600); err != nil {
			t.Fatalf("failed to create marker: %v", err)
		}
	}
	appConfig.LogLevel = "debug"
	cfg, err := NewConfig(appConfig)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	rec := &RecordingRunner{}
	a, err := NewApp(strings.NewReader(stdin), out, logs, cfg, StaticLoader{}, rec)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("COVRUNNER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &TestApp{App: a, Out: out, Logs: logs, Runner: rec}
}
