// Package ffmpegbin resolves a runnable ffmpeg path, downloading and
// caching a static build on first use when none is installed.
package ffmpegbin

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/clipforge/mp3cut/internal/domain"
	"github.com/clipforge/mp3cut/internal/ports"
)

// Locator implements ports.BinaryLocator. Resolution order: explicit
// Path, then ffmpeg on PATH, then the cache directory, then a one-time
// download of a prebuilt static binary into the cache.
type Locator struct {
	// Path, when set, short-circuits resolution. It must point at an
	// existing executable.
	Path string

	// CacheDir is where acquired binaries are stored.
	CacheDir string

	// Client performs the download on first use.
	Client ports.HTTPClient

	Log zerolog.Logger

	build    build
	lookPath func(file string) (string, error)
}

// New creates a Locator for the current platform.
func New(path, cacheDir string, client ports.HTTPClient, log zerolog.Logger) *Locator {
	return &Locator{
		Path:     path,
		CacheDir: cacheDir,
		Client:   client,
		Log:      log,
		build:    buildFor(runtime.GOOS, runtime.GOARCH),
		lookPath: exec.LookPath,
	}
}

// Locate returns an absolute path to a usable ffmpeg executable.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	if l.Path != "" {
		fi, err := os.Stat(l.Path)
		if err != nil || fi.IsDir() {
			return "", fmt.Errorf("%w: %s is not an executable file", domain.ErrBinaryUnavailable, l.Path)
		}
		return filepath.Abs(l.Path)
	}

	if p, err := l.lookPath(binaryName()); err == nil {
		l.Log.Debug().Str("path", p).Msg("using ffmpeg from PATH")
		return filepath.Abs(p)
	}

	cached := filepath.Join(l.CacheDir, binaryName())
	if fi, err := os.Stat(cached); err == nil && !fi.IsDir() && fi.Size() > 0 {
		l.Log.Debug().Str("path", cached).Msg("using cached ffmpeg")
		return filepath.Abs(cached)
	}

	return l.acquire(ctx)
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}
