package cliconfig

import (
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	cfg := DefaultSettings()

	if cfg.Timeout != 5*time.Minute {
		t.Errorf("Timeout = %v, want 5m", cfg.Timeout)
	}
	if cfg.CacheDir == "" {
		t.Error("CacheDir must have a default")
	}
	if cfg.Verify || cfg.Watch || cfg.Debug {
		t.Error("boolean settings must default to false")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Settings
		wantErr bool
	}{
		{
			name:   "valid defaults",
			config: DefaultSettings(),
		},
		{
			name:   "zero timeout disables the bound",
			config: Settings{CacheDir: "/tmp/cache"},
		},
		{
			name:    "negative timeout",
			config:  Settings{CacheDir: "/tmp/cache", Timeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "missing cache dir",
			config:  Settings{Timeout: time.Minute},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
