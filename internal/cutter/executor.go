// Package cutter runs the cut itself: one ffmpeg invocation per segment,
// with per-segment failures isolated so the batch always runs to the end.
package cutter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/clipforge/mp3cut/internal/domain"
	"github.com/clipforge/mp3cut/internal/ffmpeg"
	"github.com/clipforge/mp3cut/internal/ports"
)

// SegmentCutter extracts one normalized segment from the source file.
type SegmentCutter interface {
	Cut(ctx context.Context, source string, seg domain.NormalizedSegment) error
}

// Executor implements SegmentCutter by invoking ffmpeg through a
// ProcessRunner. It never modifies the source file.
type Executor struct {
	Bin    string
	Runner ports.ProcessRunner
	Log    zerolog.Logger
}

// Cut extracts seg from source into seg.Output, creating the output
// directory if needed. ffmpeg exit codes are not fully trustworthy for
// partial failures, so a reported success with a missing or empty output
// file still counts as a failure.
func (e *Executor) Cut(ctx context.Context, source string, seg domain.NormalizedSegment) error {
	if dir := filepath.Dir(seg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrOutputDir, err)
		}
	}

	args := ffmpeg.CutArgs(source, seg)
	e.Log.Debug().Str("bin", e.Bin).Strs("args", args).Msg("invoking ffmpeg")

	res, err := e.Runner.Run(ctx, e.Bin, args)
	if err != nil {
		return &domain.ExecError{ExitCode: -1, Stderr: err.Error()}
	}
	if res.ExitCode != 0 {
		return &domain.ExecError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	fi, err := os.Stat(seg.Output)
	if err != nil {
		return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("ffmpeg reported success but %s was not created", seg.Output)}
	}
	if fi.Size() == 0 {
		return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("ffmpeg reported success but %s is empty", seg.Output)}
	}
	return nil
}
