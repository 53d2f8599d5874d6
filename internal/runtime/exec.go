package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Exec runs bin with args in dir. Output is captured and also streamed to
// stdout and stderr when they are non-nil. A non-zero exit status is
// reported in Output.ExitCode with a nil error; the error is reserved for
// processes that could not be started or were interrupted.
func Exec(ctx context.Context, dir string, stdout, stderr io.Writer, bin string, args ...string) (*Output, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = tee(stdout, &stdoutBuf)
	cmd.Stderr = tee(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", bin, err)
	}
	return output, nil
}

func tee(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
