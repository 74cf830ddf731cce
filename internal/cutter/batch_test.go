package cutter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clipforge/mp3cut/internal/domain"
)

// fakeCutter records invocations and fails for outputs listed in failFor.
type fakeCutter struct {
	calls   []domain.NormalizedSegment
	failFor map[string]error
}

func (f *fakeCutter) Cut(ctx context.Context, source string, seg domain.NormalizedSegment) error {
	f.calls = append(f.calls, seg)
	if err, ok := f.failFor[seg.Output]; ok {
		return err
	}
	return nil
}

func testList(segs ...domain.Segment) *domain.CutList {
	return &domain.CutList{Source: "src.mp3", Segments: segs}
}

func TestBatch_AllSucceed(t *testing.T) {
	fake := &fakeCutter{}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	report := b.Run(context.Background(), testList(
		domain.Segment{Start: "0:00", End: "0:10", Output: "a.mp3"},
		domain.Segment{Start: "0:10", End: "1:30", Output: "b.mp3"},
	))

	if !report.OK() || report.Succeeded() != 2 {
		t.Fatalf("Succeeded() = %d, Failed() = %d, want 2/0", report.Succeeded(), report.Failed())
	}
	if len(fake.calls) != 2 {
		t.Fatalf("executor called %d times, want 2", len(fake.calls))
	}
	if fake.calls[1].StartSeconds != 10 || fake.calls[1].EndSeconds != 90 {
		t.Errorf("second call = %+v, want start 10 end 90", fake.calls[1])
	}
}

func TestBatch_BadTimestampSkipsExecutor(t *testing.T) {
	fake := &fakeCutter{}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	report := b.Run(context.Background(), testList(
		domain.Segment{Start: "0:00", End: "0:10", Output: "a.mp3"},
		domain.Segment{Start: "garbage", End: "0:20", Output: "b.mp3"},
		domain.Segment{Start: "0:20", End: "0:30", Output: "c.mp3"},
	))

	if report.Succeeded() != 2 || report.Failed() != 1 {
		t.Fatalf("got %d/%d, want 2 succeeded 1 failed", report.Succeeded(), report.Failed())
	}
	if !errors.Is(report.Results[1].Err, domain.ErrInvalidTimestamp) {
		t.Errorf("Results[1].Err = %v, want ErrInvalidTimestamp", report.Results[1].Err)
	}
	// The malformed segment must never reach the executor, and the batch
	// must continue past it.
	if len(fake.calls) != 2 {
		t.Fatalf("executor called %d times, want 2", len(fake.calls))
	}
	if fake.calls[1].Output != "c.mp3" {
		t.Errorf("executor skipped to %q, want c.mp3", fake.calls[1].Output)
	}
}

func TestBatch_EmptyRangeRejected(t *testing.T) {
	fake := &fakeCutter{}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	report := b.Run(context.Background(), testList(
		domain.Segment{Start: "0:10", End: "0:10", Output: "a.mp3"},
		domain.Segment{Start: "0:20", End: "0:10", Output: "b.mp3"},
	))

	if report.Failed() != 2 {
		t.Fatalf("Failed() = %d, want 2", report.Failed())
	}
	if len(fake.calls) != 0 {
		t.Errorf("executor called %d times, want 0", len(fake.calls))
	}
	for _, res := range report.Results {
		if !errors.Is(res.Err, domain.ErrInvalidTimestamp) {
			t.Errorf("Results[%d].Err = %v, want ErrInvalidTimestamp", res.Index, res.Err)
		}
	}
}

func TestBatch_ExecutionFailureIsolated(t *testing.T) {
	fake := &fakeCutter{failFor: map[string]error{
		"b.mp3": &domain.ExecError{ExitCode: 1, Stderr: "invalid data"},
	}}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	report := b.Run(context.Background(), testList(
		domain.Segment{Start: "0", End: "1", Output: "a.mp3"},
		domain.Segment{Start: "1", End: "2", Output: "b.mp3"},
		domain.Segment{Start: "2", End: "3", Output: "c.mp3"},
	))

	if report.Succeeded() != 2 || report.Failed() != 1 {
		t.Fatalf("got %d/%d, want 2 succeeded 1 failed", report.Succeeded(), report.Failed())
	}
	if !errors.Is(report.Results[1].Err, domain.ErrExecutionFailed) {
		t.Errorf("Results[1].Err = %v, want ErrExecutionFailed", report.Results[1].Err)
	}
	if len(fake.calls) != 3 {
		t.Errorf("executor called %d times, want 3 (batch must not abort)", len(fake.calls))
	}
}

func TestBatch_OrderPreserved(t *testing.T) {
	fake := &fakeCutter{}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	var segs []domain.Segment
	for i := 0; i < 5; i++ {
		segs = append(segs, domain.Segment{
			Start:  fmt.Sprintf("%d", i),
			End:    fmt.Sprintf("%d", i+1),
			Output: fmt.Sprintf("clip-%d.mp3", i),
		})
	}
	b.Run(context.Background(), testList(segs...))

	for i, call := range fake.calls {
		want := fmt.Sprintf("clip-%d.mp3", i)
		if call.Output != want {
			t.Errorf("call %d output = %q, want %q", i, call.Output, want)
		}
	}
}

func TestBatch_CancelStopsBeforeNextSegment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	fake := &cancelingCutter{cancel: cancel}
	b := &Batch{Cutter: fake, Log: zerolog.Nop()}

	report := b.Run(ctx, testList(
		domain.Segment{Start: "0", End: "1", Output: "a.mp3"},
		domain.Segment{Start: "1", End: "2", Output: "b.mp3"},
	))

	if fake.calls != 1 {
		t.Fatalf("executor called %d times after cancel, want 1", fake.calls)
	}
	if len(report.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1 (unattempted segments carry no result)", len(report.Results))
	}
}

// cancelingCutter cancels the run context during its first invocation,
// simulating a user interrupt while ffmpeg is busy.
type cancelingCutter struct {
	cancel context.CancelFunc
	calls  int
}

func (c *cancelingCutter) Cut(ctx context.Context, source string, seg domain.NormalizedSegment) error {
	c.calls++
	c.cancel()
	return nil
}

// failingVerifier always reports leftover metadata.
type failingVerifier struct{}

func (failingVerifier) VerifyClip(path string) error {
	return &domain.ExecError{ExitCode: 0, Stderr: "metadata survived"}
}

func TestBatch_VerifierFailureCountsAgainstSegment(t *testing.T) {
	fake := &fakeCutter{}
	b := &Batch{Cutter: fake, Verifier: failingVerifier{}, Log: zerolog.Nop()}

	report := b.Run(context.Background(), testList(
		domain.Segment{Start: "0", End: "1", Output: "a.mp3"},
	))

	if report.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", report.Failed())
	}
}
