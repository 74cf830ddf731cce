package cutter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clipforge/mp3cut/internal/domain"
	"github.com/clipforge/mp3cut/internal/timeparse"
)

// ClipVerifier inspects a produced clip after a successful cut.
type ClipVerifier interface {
	VerifyClip(path string) error
}

// Batch processes every segment of a cut list in declaration order.
// A failing segment never prevents later segments from being attempted;
// the only shared state is the accumulated result list.
type Batch struct {
	Cutter SegmentCutter

	// Verifier, when set, runs against each successful output and can
	// turn the result into a failure.
	Verifier ClipVerifier

	Log zerolog.Logger
}

// Run attempts every segment and returns the aggregated report. The run
// stops early only when ctx is canceled, after the in-flight segment is
// done; segments never attempted carry no result.
func (b *Batch) Run(ctx context.Context, list *domain.CutList) domain.Report {
	total := len(list.Segments)
	var report domain.Report

	for i, seg := range list.Segments {
		if ctx.Err() != nil {
			b.Log.Warn().Int("attempted", i).Int("total", total).Msg("batch interrupted")
			break
		}

		err := b.cutOne(ctx, list.Source, seg)
		report.Results = append(report.Results, domain.Result{Index: i, Segment: seg, Err: err})

		if err != nil {
			b.Log.Error().Err(err).
				Int("segment", i+1).Int("total", total).
				Str("output", seg.Output).
				Msg("segment failed")
			continue
		}
		b.Log.Info().
			Int("segment", i+1).Int("total", total).
			Str("output", seg.Output).
			Msg("segment done")
	}
	return report
}

func (b *Batch) cutOne(ctx context.Context, source string, seg domain.Segment) error {
	start, err := timeparse.Seconds(seg.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := timeparse.Seconds(seg.End)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if start >= end {
		return fmt.Errorf("%w: start %.3fs is not before end %.3fs", domain.ErrInvalidTimestamp, start, end)
	}

	norm := domain.NormalizedSegment{StartSeconds: start, EndSeconds: end, Output: seg.Output}
	if err := b.Cutter.Cut(ctx, source, norm); err != nil {
		return err
	}
	if b.Verifier != nil {
		if err := b.Verifier.VerifyClip(seg.Output); err != nil {
			return err
		}
	}
	return nil
}
