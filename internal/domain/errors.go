package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent error conditions in the mp3cut domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrConfigNotFound is returned when the cut list file does not exist
	// or cannot be read.
	ErrConfigNotFound = errors.New("mp3cut: cut list not found")

	// ErrConfigParse is returned when the cut list is not well-formed JSON.
	ErrConfigParse = errors.New("mp3cut: cut list is not valid JSON")

	// ErrConfigSchema is returned when the cut list is valid JSON but
	// required fields are missing or have the wrong type.
	ErrConfigSchema = errors.New("mp3cut: invalid cut list")

	// ErrSourceNotFound is returned when the configured source file does
	// not exist.
	ErrSourceNotFound = errors.New("mp3cut: source file not found")

	// ErrInvalidTimestamp is returned when a timestamp string matches none
	// of the accepted shapes, or a segment's time range is empty.
	ErrInvalidTimestamp = errors.New("mp3cut: invalid timestamp")

	// ErrOutputDir is returned when a segment's output directory cannot
	// be created.
	ErrOutputDir = errors.New("mp3cut: cannot create output directory")

	// ErrBinaryUnavailable is returned when no usable ffmpeg binary can be
	// resolved or acquired.
	ErrBinaryUnavailable = errors.New("mp3cut: ffmpeg unavailable")

	// ErrExecutionFailed is returned when an ffmpeg invocation fails or
	// produces no usable output.
	ErrExecutionFailed = errors.New("mp3cut: ffmpeg execution failed")
)

// ExecError describes a failed ffmpeg invocation. ExitCode is -1 when the
// process could not be started at all.
type ExecError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if e.ExitCode == -1 {
		if msg == "" {
			msg = "process could not be started"
		}
		return fmt.Sprintf("ffmpeg could not be started: %s", msg)
	}
	if msg == "" {
		return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, msg)
}

// Unwrap makes ExecError match ErrExecutionFailed under errors.Is.
func (e *ExecError) Unwrap() error { return ErrExecutionFailed }
