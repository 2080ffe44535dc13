// Package shell implements the process invoker on top of os/exec.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"go.trai.ch/bootstrap/internal/core/domain"
	"go.trai.ch/bootstrap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Runner implements ports.Runner. Output is forwarded through a PTY when
// stdout is a terminal, so child build tools keep their progress rendering;
// otherwise the child inherits plain pipes.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and forwards its output. On nonzero exit or
// spawn failure the returned error carries the literal command line, so the
// failure is diagnosable even without verbose mode.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	c, err := r.prepare(ctx, cmd)
	if err != nil {
		return err
	}

	wait, err := start(c)
	if err != nil {
		return failure(cmd, err)
	}
	if err := wait(); err != nil {
		return failure(cmd, err)
	}
	return nil
}

// RunOutput executes the command and returns its captured stdout.
func (r *Runner) RunOutput(ctx context.Context, cmd domain.Command) (string, error) {
	c, err := r.prepare(ctx, cmd)
	if err != nil {
		return "", err
	}

	out, err := c.Output()
	if err != nil {
		return "", failure(cmd, err)
	}
	return string(out), nil
}

func (r *Runner) prepare(ctx context.Context, cmd domain.Command) (*exec.Cmd, error) {
	if len(cmd.Args) == 0 {
		return nil, zerr.New("empty command")
	}

	if cmd.Echo {
		r.logger.Info(cmd.String())
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // argv assembled by the driver
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	return c, nil
}

// start launches c and returns a wait function. The PTY path merges stdout
// and stderr, matching what the child would see on an interactive terminal.
func start(c *exec.Cmd) (func() error, error) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if ptmx, err := pty.Start(c); err == nil {
			ioDone := make(chan struct{})
			go func() {
				defer close(ioDone)
				defer func() { _ = ptmx.Close() }()
				_, _ = io.Copy(os.Stdout, ptmx)
			}()
			return func() error {
				err := c.Wait()
				<-ioDone
				return err
			}, nil
		}
		// PTY allocation failed; fall back to pipes.
	}

	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Start(); err != nil {
		return nil, err
	}
	return c.Wait, nil
}

func failure(cmd domain.Command, err error) error {
	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(
		zerr.Wrap(err, fmt.Sprintf("command failed: %s", cmd.String())),
		"exit_code", exitCode,
	)
}

var _ ports.Runner = (*Runner)(nil)
