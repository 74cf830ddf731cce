// Package execrunner implements ports.ProcessRunner on top of os/exec.
package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/clipforge/mp3cut/internal/ports"
)

// Runner runs external processes synchronously. A positive Timeout bounds
// each invocation; zero disables the bound.
type Runner struct {
	Timeout time.Duration
}

// New creates a Runner with the given per-invocation timeout.
func New(timeout time.Duration) *Runner {
	return &Runner{Timeout: timeout}
}

// Run executes bin with args, discarding stdout and capturing stderr.
// A non-zero exit status is returned through ProcessResult; the error
// return is reserved for processes that could not be started or that
// were killed by the timeout.
func (r *Runner) Run(ctx context.Context, bin string, args []string) (ports.ProcessResult, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return ports.ProcessResult{}, fmt.Errorf("process killed after %v timeout", r.Timeout)
		}
		return ports.ProcessResult{}, ctxErr
	}
	if err == nil {
		return ports.ProcessResult{ExitCode: 0, Stderr: stderr.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return ports.ProcessResult{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}, nil
	}
	return ports.ProcessResult{}, err
}
