// Package git initializes version control in a new project.
package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/projectbaker/baker/internal/runtime"
)

// DefaultBin is the git executable used when none is set.
const DefaultBin = "git"

// Initializer runs `git init` in a project root.
type Initializer struct {
	Bin string // defaults to DefaultBin
}

// New returns an Initializer using the git found on PATH.
func New() *Initializer {
	return &Initializer{Bin: DefaultBin}
}

// Init creates an empty repository in dir. A git that runs but fails is
// reported through the Output exit code.
func (g *Initializer) Init(ctx context.Context, dir string) (*runtime.Output, error) {
	bin := g.Bin
	if bin == "" {
		bin = DefaultBin
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("git is required but not found in PATH: %w", err)
	}
	return runtime.Exec(ctx, dir, nil, nil, bin, "init")
}
