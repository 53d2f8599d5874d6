package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/projectbaker/baker/internal/branding"
	"github.com/projectbaker/baker/internal/manifest"
)

// Info holds the general settings from info.yaml.
type Info struct {
	Author            string `mapstructure:"author"`
	DefaultDirectory  string `mapstructure:"default_directory"`
	Venv              string `mapstructure:"venv"`
	DefaultStructure  string `mapstructure:"default_structure"`
	FallbackStructure string `mapstructure:"fallback_structure"`
	Runtime           string `mapstructure:"runtime"`
	InitialVersion    string `mapstructure:"initial_version"`
}

// Keys lists the settings accepted in info.yaml, in display order.
var Keys = []string{
	"author",
	"default_directory",
	"venv",
	"default_structure",
	"fallback_structure",
	"runtime",
	"initial_version",
}

func newInfoViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, InfoFile))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	// Every key needs a default so that env overrides reach Unmarshal.
	v.SetDefault("author", "")
	v.SetDefault("default_directory", ".")
	v.SetDefault("venv", ".venv")
	v.SetDefault("default_structure", manifest.DefaultStructure)
	v.SetDefault("fallback_structure", manifest.FallbackStructure)
	v.SetDefault("runtime", "python")
	v.SetDefault("initial_version", "0.0.1")
	return v
}

// LoadInfo reads info.yaml from dir, applies BAKER_* environment overrides
// and validates the result.
func LoadInfo(dir string) (*Info, error) {
	path := filepath.Join(dir, InfoFile)
	if err := requireFile(path); err != nil {
		return nil, err
	}

	v := newInfoViper(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var info Info
	if err := v.Unmarshal(&info); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &info, nil
}

// Validate checks required settings and normalizes initial_version to its
// canonical semver form.
func (i *Info) Validate() error {
	if strings.TrimSpace(i.Author) == "" {
		return fmt.Errorf("author is required (run '%s config set author \"Your Name\"')", branding.CLIName())
	}
	if i.Venv == "" {
		return fmt.Errorf("venv must not be empty")
	}
	version, err := ParseVersion(i.InitialVersion)
	if err != nil {
		return err
	}
	i.InitialVersion = version
	return nil
}

// ParseVersion parses a semantic version, tolerating a leading "v", and
// returns it in canonical form ("1.2" becomes "1.2.0").
func ParseVersion(s string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return "", fmt.Errorf("initial_version %q is not a valid semantic version: %w", s, err)
	}
	return v.String(), nil
}

// Get returns one info setting, including environment overrides.
func Get(dir, key string) (string, error) {
	if !slices.Contains(Keys, key) {
		return "", unknownKey(key)
	}
	path := filepath.Join(dir, InfoFile)
	v := newInfoViper(dir)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return v.GetString(key), nil
}

// Set writes one info setting to info.yaml, creating the file and
// directory when needed.
func Set(dir, key, value string) error {
	if !slices.Contains(Keys, key) {
		return unknownKey(key)
	}
	if key == "initial_version" {
		canonical, err := ParseVersion(value)
		if err != nil {
			return err
		}
		value = canonical
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, InfoFile)
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q: valid keys are %s", key, strings.Join(Keys, ", "))
}
