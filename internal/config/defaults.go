package config

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed defaults
var defaultsFS embed.FS

// DefaultsData fills the placeholders of the default info.yaml.
type DefaultsData struct {
	Author           string
	DefaultDirectory string
}

// WriteDefaults writes the default documents into dir. Documents that
// already exist are skipped. Progress is printed to w.
func WriteDefaults(dir string, w io.Writer, data DefaultsData) error {
	if data.DefaultDirectory == "" {
		data.DefaultDirectory = "."
	}

	if err := ensureDir(w, dir); err != nil {
		return err
	}

	info, err := renderInfo(data)
	if err != nil {
		return err
	}
	if err := ensureFile(w, filepath.Join(dir, InfoFile), info); err != nil {
		return err
	}

	for _, name := range []string{TemplatesFile, StructuresFile} {
		content, err := defaultsFS.ReadFile("defaults/" + name)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", name, err)
		}
		if err := ensureFile(w, filepath.Join(dir, name), content); err != nil {
			return err
		}
	}
	return nil
}

func renderInfo(data DefaultsData) ([]byte, error) {
	raw, err := defaultsFS.ReadFile("defaults/info.yaml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading embedded info template: %w", err)
	}
	tmpl, err := template.New(InfoFile).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing info template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing info template: %w", err)
	}
	return buf.Bytes(), nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
