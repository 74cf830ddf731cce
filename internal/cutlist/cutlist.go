// Package cutlist loads and validates the JSON cut list that drives a run.
package cutlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/clipforge/mp3cut/internal/domain"
)

// fileSegment mirrors domain.Segment with pointer fields so that missing
// keys can be told apart from empty strings.
type fileSegment struct {
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Output *string `json:"output"`
}

type fileCutList struct {
	Source   *string       `json:"source"`
	Segments []fileSegment `json:"segments"`
}

// Load reads, parses and validates the cut list at path. Timestamps are
// validated for presence and type only; they are parsed at execution time.
func Load(path string) (*domain.CutList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}

	var fc fileCutList
	if err := json.Unmarshal(data, &fc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has wrong type", domain.ErrConfigSchema, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigParse, err)
	}

	list, err := validate(&fc)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(list.Source); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, list.Source)
	}

	return list, nil
}

func validate(fc *fileCutList) (*domain.CutList, error) {
	if fc.Source == nil || *fc.Source == "" {
		return nil, fmt.Errorf("%w: missing required field %q", domain.ErrConfigSchema, "source")
	}
	if fc.Segments == nil {
		return nil, fmt.Errorf("%w: missing required field %q", domain.ErrConfigSchema, "segments")
	}
	if len(fc.Segments) == 0 {
		return nil, fmt.Errorf("%w: %q must not be empty", domain.ErrConfigSchema, "segments")
	}

	list := &domain.CutList{
		Source:   *fc.Source,
		Segments: make([]domain.Segment, 0, len(fc.Segments)),
	}
	for i, seg := range fc.Segments {
		if seg.Start == nil {
			return nil, fmt.Errorf("%w: segment %d missing %q", domain.ErrConfigSchema, i, "start")
		}
		if seg.End == nil {
			return nil, fmt.Errorf("%w: segment %d missing %q", domain.ErrConfigSchema, i, "end")
		}
		if seg.Output == nil || *seg.Output == "" {
			return nil, fmt.Errorf("%w: segment %d missing %q", domain.ErrConfigSchema, i, "output")
		}
		list.Segments = append(list.Segments, domain.Segment{
			Start:  *seg.Start,
			End:    *seg.End,
			Output: *seg.Output,
		})
	}
	return list, nil
}
