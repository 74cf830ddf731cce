package cliconfig

import "os"

// ApplyEnvSettings applies configuration from environment variables
// (MP3CUT_*). It respects flags that have been explicitly set (changed
// map). Returns an error if a variable has an invalid format.
func ApplyEnvSettings(cfg *Settings, changed map[string]bool) error {
	s := newSettingsSetter(changed)

	s.setString("ffmpeg", os.Getenv("MP3CUT_FFMPEG"), &cfg.FFmpegPath)
	s.setString("cache-dir", os.Getenv("MP3CUT_CACHE_DIR"), &cfg.CacheDir)

	if err := s.setDuration("timeout", os.Getenv("MP3CUT_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("verify", os.Getenv("MP3CUT_VERIFY"), &cfg.Verify)
	s.setBoolFromString("debug", os.Getenv("MP3CUT_DEBUG"), &cfg.Debug)

	return nil
}
