package runtime

import (
	"context"
	"fmt"
	"io"
)

// DefaultInterpreter is the Python executable used when none is set.
const DefaultInterpreter = "python3"

// PythonRuntime creates a virtual environment with `python3 -m venv`.
type PythonRuntime struct {
	Interpreter string // defaults to DefaultInterpreter

	// Stdout and Stderr receive the process output as it runs; optional.
	Stdout io.Writer
	Stderr io.Writer
}

// Provision runs `<interpreter> -m venv <envDir>` with projectDir as the
// working directory.
func (p *PythonRuntime) Provision(ctx context.Context, projectDir, envDir string) (*Output, error) {
	interp := p.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}

	out, err := Exec(ctx, projectDir, p.Stdout, p.Stderr, interp, "-m", "venv", envDir)
	if err != nil {
		return out, fmt.Errorf("python runtime: %w", err)
	}
	return out, nil
}
