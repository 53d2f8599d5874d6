package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Well-known file names that receive a generated header.
const (
	ReadmeFile    = "README.md"
	LicenseFile   = "LICENSE"
	ChangelogFile = "CHANGELOG.md"
)

// DefaultInitialVersion is the first CHANGELOG release when none is configured.
const DefaultInitialVersion = "0.0.1"

// Kind selects how a template body is written into a file.
type Kind int

const (
	KindGeneric Kind = iota
	KindReadme
	KindLicense
	KindChangelog
)

func (k Kind) String() string {
	switch k {
	case KindReadme:
		return "readme"
	case KindLicense:
		return "license"
	case KindChangelog:
		return "changelog"
	default:
		return "generic"
	}
}

// Classify maps a base file name to its Kind. CHANGELOG.md is checked
// first, then README.md and LICENSE; anything else is generic.
func Classify(name string) Kind {
	switch name {
	case ChangelogFile:
		return KindChangelog
	case ReadmeFile:
		return KindReadme
	case LicenseFile:
		return KindLicense
	default:
		return KindGeneric
	}
}

// HeaderData carries the values interpolated into generated headers.
type HeaderData struct {
	ProjectName    string
	Author         string
	InitialVersion string // CHANGELOG release; DefaultInitialVersion when empty
}

// Render returns the full text written for a file of the given kind.
func Render(kind Kind, body string, data HeaderData, now time.Time) string {
	var b strings.Builder
	switch kind {
	case KindReadme:
		fmt.Fprintf(&b, "# %s\n\n", data.ProjectName)
		b.WriteString(body)
	case KindLicense:
		fmt.Fprintf(&b, "Copyright %d %s\n\n", now.Year(), data.Author)
		b.WriteString(body)
	case KindChangelog:
		version := data.InitialVersion
		if version == "" {
			version = DefaultInitialVersion
		}
		b.WriteString(body)
		fmt.Fprintf(&b, "\n\n## [%s] - %s\n\n### Added\n\n- This file", version, now.Format("2006-01-02"))
	default:
		b.WriteString(body)
	}
	return b.String()
}

// ApplyBoilerplate appends the rendered template to every file whose base
// name has an entry in templates. Files without a template are left alone.
func (m *Materializer) ApplyBoilerplate(files []string, templates map[string]string, data HeaderData) error {
	m.log.Debug("checking for boilerplate templates", "templates", len(templates))

	now := m.now()
	for _, file := range files {
		name := filepath.Base(file)
		body, ok := templates[name]
		if !ok {
			m.log.Debug("no template found for file", "file", name)
			continue
		}

		kind := Classify(name)
		m.log.Debug("found boilerplate template", "path", file, "kind", kind)
		if err := m.appendFile(file, Render(kind, body, data, now)); err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, m.filePerm)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
