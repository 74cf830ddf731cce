package ports

import "context"

// ProcessResult captures what the core needs from a finished external
// process: its exit status and whatever it wrote to standard error.
type ProcessResult struct {
	ExitCode int
	Stderr   string
}

// ProcessRunner executes an external binary synchronously. A non-zero
// exit status is reported through ProcessResult, not through the error;
// the error return is reserved for processes that could not be started
// or run to completion at all.
type ProcessRunner interface {
	Run(ctx context.Context, bin string, args []string) (ProcessResult, error)
}
