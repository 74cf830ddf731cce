// Package domain holds the core types of mp3cut: the cut list loaded
// from JSON, the normalized form segments take once timestamps are
// parsed, per-segment results, and the sentinel errors returned by the
// public surface.
package domain
