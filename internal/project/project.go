// Package project runs one scaffolding pass: it selects a structure, builds
// the manifest, materializes it on disk and then hands the new root to the
// environment and version-control collaborators.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/logging"
	"github.com/projectbaker/baker/internal/manifest"
	"github.com/projectbaker/baker/internal/runtime"
	"github.com/projectbaker/baker/internal/scaffold"
)

// ErrStructureNotFound is returned when neither the requested structure nor
// the fallback structure is configured.
var ErrStructureNotFound = errors.New("structure not found")

// RepoInitializer creates a version-control repository in a directory.
type RepoInitializer interface {
	Init(ctx context.Context, dir string) (*runtime.Output, error)
}

// Env is constructed once at the entry point and carries everything a run
// depends on.
type Env struct {
	Log     *slog.Logger
	Config  *config.Config
	Now     func() time.Time
	Runtime runtime.Runtime
	Git     RepoInitializer
}

// Request describes the project to create.
type Request struct {
	Name        string
	Destination string   // overrides info.default_directory when set
	Structure   string   // overrides info.default_structure when set
	Subdirs     []string // extra directories under the root
	SkipEnv     bool
	InitGit     bool
}

// Result summarizes a completed run.
type Result struct {
	Root           string
	Structure      string // structure actually used
	FellBack       bool
	Manifest       *manifest.ProjectManifest
	CreatedDirs    []string
	CreatedFiles   []string
	EnvProvisioned bool
	GitInitialized bool
}

// Root returns the project root for req: the destination (or the
// configured default directory) joined with the project name.
func Root(info config.Info, req Request) string {
	dest := req.Destination
	if dest == "" {
		dest = info.DefaultDirectory
	}
	return filepath.Join(config.ExpandHome(dest), req.Name)
}

// SelectStructure looks up the requested structure. An unknown name is
// reported and replaced by the fallback structure; only a missing fallback
// is an error.
func SelectStructure(log *slog.Logger, cfg *config.Config, name string) (string, manifest.Structure, bool, error) {
	if name == "" {
		name = cfg.Info.DefaultStructure
	}
	if s, ok := cfg.Structures[name]; ok {
		return name, s, false, nil
	}

	logging.Critical(log, "missing structure", "name", name)
	fallback := cfg.Info.FallbackStructure
	log.Warn("falling back to default structure", "name", fallback)

	s, ok := cfg.Structures[fallback]
	if !ok {
		return "", nil, false, fmt.Errorf("%w: %q nor fallback %q (configured: %s)",
			ErrStructureNotFound, name, fallback, strings.Join(manifest.Names(cfg.Structures), ", "))
	}
	return fallback, s, true, nil
}

// Run scaffolds the project described by req. Filesystem failures other
// than already-existing entries abort the run and leave any partial tree in
// place. Environment and repository failures are logged but do not fail the
// run.
func Run(ctx context.Context, env *Env, req Request) (*Result, error) {
	log := env.Log
	cfg := env.Config

	name, structure, fellBack, err := SelectStructure(log, cfg, req.Structure)
	if err != nil {
		return nil, err
	}

	root := Root(cfg.Info, req)
	if len(req.Subdirs) > 0 {
		log.Debug("got user subdirectories", "subdirs", req.Subdirs)
	}
	m := manifest.Build(structure, req.Subdirs, root)
	log.Debug("built project manifest", "structure", name, "directories", len(m.Directories), "files", len(m.Files))

	opts := []scaffold.Option{}
	if env.Now != nil {
		opts = append(opts, scaffold.WithClock(env.Now))
	}
	mat := scaffold.New(log, opts...)

	result := &Result{
		Root:      root,
		Structure: name,
		FellBack:  fellBack,
		Manifest:  m,
	}

	if err := mat.CreateRoot(root); err != nil {
		return result, err
	}
	if result.CreatedDirs, err = mat.CreateDirectories(m.Directories); err != nil {
		return result, err
	}
	if result.CreatedFiles, err = mat.CreateFiles(m.Files); err != nil {
		return result, err
	}

	// Only files created by this run are seeded; existing files keep their content.
	data := scaffold.HeaderData{
		ProjectName:    req.Name,
		Author:         cfg.Info.Author,
		InitialVersion: cfg.Info.InitialVersion,
	}
	if err := mat.ApplyBoilerplate(result.CreatedFiles, cfg.Templates, data); err != nil {
		return result, err
	}

	if req.SkipEnv {
		log.Debug("skipping virtual environment", "reason", "--no-venv")
	} else {
		result.EnvProvisioned = provisionEnv(ctx, env, root)
	}

	if req.InitGit {
		result.GitInitialized = initRepo(ctx, env, root)
	} else {
		log.Debug("not initializing git repository")
	}

	log.Info("project created", "path", root, "structure", name)
	return result, nil
}

func provisionEnv(ctx context.Context, env *Env, root string) bool {
	venv := env.Config.Info.Venv
	rt := env.Runtime
	if rt == nil {
		rt = runtime.DispatchRuntime(env.Config.Info.Runtime)
	}

	env.Log.Info("creating virtual environment", "name", venv)
	out, err := rt.Provision(ctx, root, venv)
	return reportProcess(env.Log, "virtual environment", out, err)
}

func initRepo(ctx context.Context, env *Env, root string) bool {
	if env.Git == nil {
		env.Log.Warn("no repository initializer configured")
		return false
	}

	env.Log.Info("initializing git repository", "path", root)
	out, err := env.Git.Init(ctx, root)
	return reportProcess(env.Log, "git repository", out, err)
}

func reportProcess(log *slog.Logger, what string, out *runtime.Output, err error) bool {
	if err != nil {
		log.Warn("unable to create "+what, "error", err)
		return false
	}
	if out != nil && out.ExitCode != 0 {
		log.Warn("unable to create "+what, "exit_code", out.ExitCode, "stderr", strings.TrimSpace(out.Stderr))
		return false
	}
	return true
}
