package runtime

import (
	"context"
	"fmt"
)

// Runtime defines the interface for provisioning a project environment.
type Runtime interface {
	// Provision creates the environment envDir inside projectDir.
	// A process that runs but exits non-zero is reported through Output,
	// not through the error.
	Provision(ctx context.Context, projectDir, envDir string) (*Output, error)
}

// Output captures the result of a provisioning process.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported runtime identifiers.
const (
	RuntimePython = "python"
	RuntimeVenv   = "venv"
	RuntimeNone   = "none"
)

// DispatchRuntime returns the Runtime implementation for the given
// identifier. Returns an error-producing runtime for unknown values.
func DispatchRuntime(name string) Runtime {
	switch name {
	case RuntimePython, RuntimeVenv, "":
		return &PythonRuntime{}
	case RuntimeNone:
		return noopRuntime{}
	default:
		return &unknownRuntime{name: name}
	}
}

// noopRuntime provisions nothing.
type noopRuntime struct{}

func (noopRuntime) Provision(context.Context, string, string) (*Output, error) {
	return &Output{}, nil
}

// unknownRuntime is returned when the runtime identifier is not recognized.
type unknownRuntime struct {
	name string
}

func (u *unknownRuntime) Provision(context.Context, string, string) (*Output, error) {
	return nil, fmt.Errorf("unknown runtime %q: supported runtimes are %q and %q", u.name, RuntimePython, RuntimeNone)
}
