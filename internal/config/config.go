package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/projectbaker/baker/internal/branding"
	"github.com/projectbaker/baker/internal/manifest"
)

// Document file names inside the config directory.
const (
	InfoFile       = "info.yaml"
	TemplatesFile  = "templates.yaml"
	StructuresFile = "structures.yaml"
)

// ErrConfigMissing is returned when a required document does not exist.
var ErrConfigMissing = errors.New("configuration document not found")

// Config is everything a run needs from the config directory.
type Config struct {
	Dir        string
	Info       Info
	Templates  map[string]string
	Structures map[string]manifest.Structure
}

// Dir returns the config directory: $BAKER_CONFIG_DIR if set, otherwise
// ~/.baker/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("CONFIG_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// Load reads and validates all three documents from dir. Any missing
// document is reported as ErrConfigMissing before anything else is read.
func Load(dir string) (*Config, error) {
	for _, name := range []string{InfoFile, TemplatesFile, StructuresFile} {
		if err := requireFile(filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	info, err := LoadInfo(dir)
	if err != nil {
		return nil, err
	}

	templates, err := loadTemplates(filepath.Join(dir, TemplatesFile))
	if err != nil {
		return nil, err
	}

	structures, err := loadStructures(filepath.Join(dir, StructuresFile))
	if err != nil {
		return nil, err
	}

	return &Config{
		Dir:        dir,
		Info:       *info,
		Templates:  templates,
		Structures: structures,
	}, nil
}

// LoadStructures reads and validates structures.yaml from dir.
func LoadStructures(dir string) (map[string]manifest.Structure, error) {
	path := filepath.Join(dir, StructuresFile)
	if err := requireFile(path); err != nil {
		return nil, err
	}
	return loadStructures(path)
}

func loadTemplates(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	result, err := manifest.ValidateTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, invalidDocument(path, result)
	}
	return manifest.ParseTemplates(data)
}

func loadStructures(path string) (map[string]manifest.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	result, err := manifest.ValidateStructures(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, invalidDocument(path, result)
	}
	structures, err := manifest.ParseStructures(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return structures, nil
}

func invalidDocument(path string, result *manifest.ValidationResult) error {
	msgs := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Errorf("invalid document %s:\n  %s", path, strings.Join(msgs, "\n  "))
}

func requireFile(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s (run '%s init' to create defaults)", ErrConfigMissing, path, branding.CLIName())
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
