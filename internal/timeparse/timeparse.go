// Package timeparse converts human-readable timestamps to seconds.
// Accepted shapes are plain seconds ("45.5"), minutes:seconds ("12:03.5")
// and hours:minutes:seconds ("01:02:03"). Components may be zero-padded;
// the seconds component may carry a fractional part.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/clipforge/mp3cut/internal/domain"
)

// Seconds parses a timestamp string into a non-negative seconds value.
// Non-leading components must be below 60; the leading component
// (minutes in mm:ss, hours in hh:mm:ss) is unbounded.
func Seconds(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", domain.ErrInvalidTimestamp)
	}

	if !strings.Contains(trimmed, ":") {
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		return v, nil
	}

	parts := strings.Split(trimmed, ":")
	switch len(parts) {
	case 2:
		minutes, err := component(parts[0], -1)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		seconds, err := fractional(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		return float64(minutes)*60 + seconds, nil
	case 3:
		hours, err := component(parts[0], -1)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		minutes, err := component(parts[1], 60)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		seconds, err := fractional(parts[2])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
	}
}

// component parses a non-negative integer component. A limit of -1 leaves
// the component unbounded.
func component(s string, limit int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || (limit > 0 && v >= limit) {
		return 0, fmt.Errorf("component %d out of range", v)
	}
	return v, nil
}

// fractional parses the trailing seconds component, which may carry a
// fractional part but must stay below 60.
func fractional(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 || v >= 60 {
		return 0, fmt.Errorf("seconds %v out of range", v)
	}
	return v, nil
}
