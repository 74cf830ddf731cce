// Package verify inspects produced clips to confirm the metadata strip
// actually happened.
package verify

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"

	"github.com/clipforge/mp3cut/internal/domain"
)

// Checker implements cutter.ClipVerifier by reading the clip's tag
// region with dhowden/tag.
type Checker struct{}

// VerifyClip fails when the clip is empty or still carries metadata
// tags. An unreadable tag region counts as stripped.
func (Checker) VerifyClip(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("verify: %v", err)}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("verify: %v", err)}
	}
	if fi.Size() == 0 {
		return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("verify: %s is empty", path)}
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		// No parseable tags means the strip worked.
		return nil
	}
	return &domain.ExecError{ExitCode: 0, Stderr: fmt.Sprintf("verify: %s still carries %s metadata", path, m.Format())}
}
