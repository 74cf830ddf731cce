// Package ffmpeg builds argument lists for ffmpeg invocations. Flag
// semantics are fixed: every cut strips metadata, drops non-audio
// streams and stream-copies the audio; only timestamps, source and
// output vary per segment.
package ffmpeg

import (
	"fmt"

	"github.com/clipforge/mp3cut/internal/domain"
)

// CutArgs builds the arguments for one lossless cut. Millisecond
// precision on the seek timestamps keeps frame alignment stable.
func CutArgs(source string, seg domain.NormalizedSegment) []string {
	return []string{
		"-nostats", "-hide_banner", "-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", seg.StartSeconds),
		"-to", fmt.Sprintf("%.3f", seg.EndSeconds),
		"-i", source,
		"-map_metadata", "-1",
		"-vn",
		"-c", "copy",
		"-y",
		seg.Output,
	}
}

// VersionArgs builds the arguments for a binary sanity check.
func VersionArgs() []string {
	return []string{"-version"}
}
