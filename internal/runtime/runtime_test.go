package runtime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRuntime(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"python", &PythonRuntime{}},
		{"venv", &PythonRuntime{}},
		{"", &PythonRuntime{}},
		{"none", noopRuntime{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, DispatchRuntime(tt.name))
		})
	}
}

func TestDispatchRuntime_Unknown(t *testing.T) {
	rt := DispatchRuntime("cobol")
	require.IsType(t, &unknownRuntime{}, rt)

	_, err := rt.Provision(context.Background(), t.TempDir(), ".venv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown runtime "cobol"`)
}

func TestNoopRuntime(t *testing.T) {
	dir := t.TempDir()
	out, err := DispatchRuntime("none").Provision(context.Background(), dir, ".venv")
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	assert.NoDirExists(t, filepath.Join(dir, ".venv"))
}

func TestPythonRuntime_RunsVenvInProjectDir(t *testing.T) {
	interp := fakeInterpreter(t, `mkdir -p "$3"; echo "args: $*"`)
	project := t.TempDir()

	var stdout bytes.Buffer
	rt := &PythonRuntime{Interpreter: interp, Stdout: &stdout}
	out, err := rt.Provision(context.Background(), project, ".venv")
	require.NoError(t, err)

	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "args: -m venv .venv\n", out.Stdout)
	assert.Equal(t, out.Stdout, stdout.String())
	assert.DirExists(t, filepath.Join(project, ".venv"))
}

func TestPythonRuntime_NonZeroExit(t *testing.T) {
	interp := fakeInterpreter(t, `echo "no venv module" >&2; exit 3`)

	rt := &PythonRuntime{Interpreter: interp}
	out, err := rt.Provision(context.Background(), t.TempDir(), ".venv")
	require.NoError(t, err)

	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "no venv module\n", out.Stderr)
}

func TestPythonRuntime_MissingInterpreter(t *testing.T) {
	rt := &PythonRuntime{Interpreter: filepath.Join(t.TempDir(), "no-such-python")}
	_, err := rt.Provision(context.Background(), t.TempDir(), ".venv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// fakeInterpreter writes an executable shell script standing in for python3.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "python3")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}
