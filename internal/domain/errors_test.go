package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestExecError_Unwrap(t *testing.T) {
	err := error(&ExecError{ExitCode: 1, Stderr: "bad input"})
	if !errors.Is(err, ErrExecutionFailed) {
		t.Error("ExecError should match ErrExecutionFailed")
	}
}

func TestExecError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  ExecError
		want string
	}{
		{"with stderr", ExecError{ExitCode: 1, Stderr: "invalid data\n"}, "code 1: invalid data"},
		{"without stderr", ExecError{ExitCode: 2}, "code 2"},
		{"unstartable", ExecError{ExitCode: -1, Stderr: "no such file"}, "could not be started"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestReport_Counts(t *testing.T) {
	r := Report{Results: []Result{
		{Index: 0},
		{Index: 1, Err: ErrInvalidTimestamp},
		{Index: 2},
	}}
	if r.Succeeded() != 2 || r.Failed() != 1 {
		t.Errorf("got %d/%d, want 2 succeeded 1 failed", r.Succeeded(), r.Failed())
	}
	if r.OK() {
		t.Error("OK() should be false with a failed segment")
	}
	empty := Report{}
	if !empty.OK() {
		t.Error("an empty report is OK")
	}
}
