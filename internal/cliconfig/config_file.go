package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileSettings mirrors Settings but uses strings for durations to make
// TOML friendly.
type FileSettings struct {
	FFmpegPath string `toml:"ffmpeg_path"`
	CacheDir   string `toml:"cache_dir"`
	Timeout    string `toml:"timeout"`
	Verify     *bool  `toml:"verify"`
	Debug      *bool  `toml:"debug"`
}

// LoadFileSettings reads and parses a TOML settings file from the given path.
func LoadFileSettings(path string) (FileSettings, error) {
	var fs FileSettings
	b, err := os.ReadFile(path)
	if err != nil {
		return fs, err
	}
	if err := toml.Unmarshal(b, &fs); err != nil {
		return fs, err
	}
	return fs, nil
}

// DefaultSettingsPath returns ~/.mp3cut/config.toml when the user home
// directory is accessible.
func DefaultSettingsPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mp3cut", "config.toml")
	}
	return ""
}

// ApplyFileSettings applies values from a settings file, skipping any
// setting whose flag was set explicitly (changed map).
func ApplyFileSettings(cfg *Settings, fs FileSettings, changed map[string]bool) error {
	s := newSettingsSetter(changed)

	s.setString("ffmpeg", fs.FFmpegPath, &cfg.FFmpegPath)
	s.setString("cache-dir", fs.CacheDir, &cfg.CacheDir)

	if err := s.setDuration("timeout", fs.Timeout, &cfg.Timeout); err != nil {
		return err
	}

	s.setBool("verify", fs.Verify, &cfg.Verify)
	s.setBool("debug", fs.Debug, &cfg.Debug)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
