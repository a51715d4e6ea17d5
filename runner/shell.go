package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/projecteru2/core/log"
)

// waitDelay bounds how long Run waits for output pipes after the shell was
// killed, in case a grandchild still holds them open.
const waitDelay = time.Second

// compile-time interface check.
var _ Runner = (*Shell)(nil)

// Shell runs command lines through "<Path> -c".
type Shell struct {
	path    string
	timeout time.Duration
}

// NewShell creates a Shell runner. A zero timeout leaves the command bounded
// only by ctx.
func NewShell(path string, timeout time.Duration) *Shell {
	if path == "" {
		path = "/bin/sh"
	}
	return &Shell{path: path, timeout: timeout}
}

// Run executes cmdline and waits for it to exit.
func (s *Shell) Run(ctx context.Context, cmdline string) (*Result, error) {
	logger := log.WithFunc("runner.Run")
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path, "-c", cmdline) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	logger.Debugf(ctx, "exec: %s", cmdline)
	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case ctx.Err() != nil:
		return nil, fmt.Errorf("run %q: %w", cmdline, ctx.Err())
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		logger.Debugf(ctx, "exit %d: %s", res.ExitCode, cmdline)
		return res, nil
	default:
		return nil, fmt.Errorf("run %q: %w", cmdline, err)
	}
}
