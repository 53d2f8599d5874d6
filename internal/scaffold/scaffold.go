package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Default permissions for created entries.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Materializer creates directories and files for a project manifest.
type Materializer struct {
	log      *slog.Logger
	now      func() time.Time
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithClock overrides the clock used for boilerplate dates.
func WithClock(now func() time.Time) Option {
	return func(m *Materializer) { m.now = now }
}

// WithPerms overrides the permissions of created directories and files.
func WithPerms(dir, file os.FileMode) Option {
	return func(m *Materializer) {
		m.dirPerm = dir
		m.filePerm = file
	}
}

// New returns a Materializer logging to log.
func New(log *slog.Logger, opts ...Option) *Materializer {
	m := &Materializer{
		log:      log,
		now:      time.Now,
		dirPerm:  DirPerm,
		filePerm: FilePerm,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateRoot creates the project root directory and any missing parents.
// An existing root directory is reported and reused.
func (m *Materializer) CreateRoot(root string) error {
	if info, err := os.Stat(root); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", root)
		}
		m.log.Warn("project directory already exists", "path", root)
		return nil
	}

	m.log.Info("creating project directory", "path", root)
	if err := os.MkdirAll(root, m.dirPerm); err != nil {
		return fmt.Errorf("creating project directory %s: %w", root, err)
	}
	return nil
}

// CreateDirectories creates each directory, including missing parents.
// Directories that already exist are logged and skipped; any other failure
// stops the run. It returns the directories it actually created.
func (m *Materializer) CreateDirectories(dirs []string) ([]string, error) {
	m.log.Info("creating project folders", "count", len(dirs))

	var created []string
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Dir(dir), m.dirPerm); err != nil {
			return created, fmt.Errorf("creating parent of %s: %w", dir, err)
		}

		err := os.Mkdir(dir, m.dirPerm)
		if errors.Is(err, fs.ErrExist) {
			m.log.Warn("unable to make directory: already exists", "path", dir)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("creating directory %s: %w", dir, err)
		}

		m.log.Debug("created directory", "path", dir)
		created = append(created, dir)
	}
	return created, nil
}

// CreateFiles creates each file empty. The parent directory must already
// exist. Files that already exist are logged and left untouched; any other
// failure stops the run. It returns the files it actually created.
func (m *Materializer) CreateFiles(files []string) ([]string, error) {
	m.log.Info("creating project files", "count", len(files))

	var created []string
	for _, file := range files {
		f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, m.filePerm)
		if errors.Is(err, fs.ErrExist) {
			m.log.Warn("unable to create file: already exists", "path", file)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("creating file %s: %w", file, err)
		}
		if err := f.Close(); err != nil {
			return created, fmt.Errorf("closing file %s: %w", file, err)
		}

		m.log.Debug("created file", "path", file)
		created = append(created, file)
	}
	return created, nil
}
