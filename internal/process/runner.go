package process

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/tacogips/cconv/internal/debug"
)

// ExitNotFound is reported when the command cannot be started.
const ExitNotFound = 127

// Runner abstracts "run external command, return exit code".
type Runner interface {
	// Run executes name with args and waits for it. A non-zero exit is not an
	// error; err is set only when the process could not be run at all.
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner executes commands on the local host. Nil streams fall back to
// the current process's standard streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to os.Stdin, os.Stdout and os.Stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner on top of os/exec.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	debug.Debug("[process] exec %s %v", name, args)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitCode(exitErr)
		debug.Debug("[process] %s exited with %d", name, code)
		return code, nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitNotFound, err
	}
	return 1, err
}

func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
