// Package shell provides the process executor used to run make.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"

	"go.trai.ch/makerun/internal/core/domain"
	"go.trai.ch/makerun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command with the caller's environment and waits for it to complete.
// Non-zero exits carry the exit_code metadata and still unwrap to *exec.ExitError.
func (e *Executor) Execute(
	ctx context.Context,
	command domain.MakeCommand,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	argv := command.Argv()
	name := argv[0]

	executable := name
	if lp, err := exec.LookPath(name); err == nil {
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // argv is built from the invocation
	cmd.Args[0] = name
	cmd.Env = os.Environ()
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMakeStartFailed.Error()), "program", name)
	}
	e.logger.Debug("started " + name + " (pid " + strconv.Itoa(cmd.Process.Pid) + ")")

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrMakeFailed.Error()), "exit_code", exitCode)
	}

	return nil
}
