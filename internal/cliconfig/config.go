// Package cliconfig holds tool-level settings for mp3cut (ffmpeg path,
// cache directory, timeout) with flag > env > file > default precedence.
// The cut list itself is separate and lives in internal/cutlist.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings holds tool-level configuration.
type Settings struct {
	// FFmpegPath overrides binary resolution when set.
	FFmpegPath string

	// CacheDir is where a downloaded ffmpeg binary is stored.
	CacheDir string

	// Timeout bounds each ffmpeg invocation. Zero disables the bound.
	Timeout time.Duration

	// Verify inspects each produced clip for leftover metadata tags.
	Verify bool

	// Watch keeps the process running and re-cuts on cut list changes.
	Watch bool

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() Settings {
	return Settings{
		CacheDir: defaultCacheDir(),
		Timeout:  5 * time.Minute,
	}
}

func defaultCacheDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mp3cut", "bin")
	}
	return ".mp3cut-cache"
}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	if s.CacheDir == "" {
		return fmt.Errorf("cache-dir is required")
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// settingsSetter applies configuration values while respecting flag
// precedence: a value is skipped when the corresponding flag was set
// explicitly.
type settingsSetter struct {
	changed map[string]bool
}

func newSettingsSetter(changed map[string]bool) *settingsSetter {
	return &settingsSetter{changed: changed}
}

func (s *settingsSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *settingsSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

func (s *settingsSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *settingsSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
