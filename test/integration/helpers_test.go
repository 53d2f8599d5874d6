//go:build integration

package integration_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/git"
	"github.com/projectbaker/baker/internal/logging"
	"github.com/projectbaker/baker/internal/project"
	"github.com/projectbaker/baker/internal/runtime"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigDir  string // BAKER_CONFIG_DIR, holds info/templates/structures
	ProjectDir string // default_directory new projects are created in
	Logs       *bytes.Buffer
}

// setupTestEnv writes the default configuration into a temp directory and
// points BAKER_CONFIG_DIR at it. BAKER_* overrides from the host are cleared.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ConfigDir:  filepath.Join(t.TempDir(), "config"),
		ProjectDir: t.TempDir(),
		Logs:       &bytes.Buffer{},
	}

	t.Setenv("BAKER_CONFIG_DIR", env.ConfigDir)
	for _, key := range config.Keys {
		name := "BAKER_" + strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	data := config.DefaultsData{Author: "Test Author", DefaultDirectory: env.ProjectDir}
	if err := config.WriteDefaults(env.ConfigDir, io.Discard, data); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	return env
}

// newEnv loads the configuration and builds the run environment with the
// real collaborators.
func (e *testEnv) newEnv(t *testing.T) *project.Env {
	t.Helper()

	cfg, err := config.Load(e.ConfigDir)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return &project.Env{
		Log:     logging.New(e.Logs, logging.Options{Verbose: true}),
		Config:  cfg,
		Now:     func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
		Runtime: runtime.DispatchRuntime(cfg.Info.Runtime),
		Git:     git.New(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file to exist: %s", path)
		return
	}
	if info.IsDir() {
		t.Errorf("expected a file, got a directory: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected a directory, got a file: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path to not exist: %s", path)
	}
}
