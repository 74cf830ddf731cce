package ffmpegbin

import (
	"archive/tar"
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ulikunitz/xz"

	"github.com/clipforge/mp3cut/internal/domain"
)

const (
	formatTarXz = "tar.xz"
	formatZip   = "zip"
)

// build describes the prebuilt static ffmpeg archive for one platform.
type build struct {
	URL    string
	Format string
}

// buildFor returns the static build for the platform, or a zero build
// when no prebuilt archive is published for it.
func buildFor(goos, goarch string) build {
	switch goos + "/" + goarch {
	case "linux/amd64":
		return build{URL: "https://johnvansickle.com/ffmpeg/releases/ffmpeg-release-amd64-static.tar.xz", Format: formatTarXz}
	case "linux/arm64":
		return build{URL: "https://johnvansickle.com/ffmpeg/releases/ffmpeg-release-arm64-static.tar.xz", Format: formatTarXz}
	case "darwin/amd64", "darwin/arm64":
		return build{URL: "https://evermeet.cx/ffmpeg/getrelease/zip", Format: formatZip}
	case "windows/amd64":
		return build{URL: "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-essentials.zip", Format: formatZip}
	default:
		return build{}
	}
}

// acquire downloads the static build into a staging directory, extracts
// the ffmpeg entry and moves it into the cache.
func (l *Locator) acquire(ctx context.Context) (string, error) {
	if l.build.URL == "" {
		return "", fmt.Errorf("%w: no prebuilt binary for this platform", domain.ErrBinaryUnavailable)
	}
	if l.Client == nil {
		return "", fmt.Errorf("%w: acquisition disabled", domain.ErrBinaryUnavailable)
	}

	if err := os.MkdirAll(l.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: cache dir: %v", domain.ErrBinaryUnavailable, err)
	}
	staging := filepath.Join(l.CacheDir, "staging-"+uuid.NewString())
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return "", fmt.Errorf("%w: staging dir: %v", domain.ErrBinaryUnavailable, err)
	}
	defer os.RemoveAll(staging)

	l.Log.Info().Str("url", l.build.URL).Msg("ffmpeg not found, downloading static build")

	archive := filepath.Join(staging, "ffmpeg-archive")
	if err := l.fetch(ctx, l.build.URL, archive); err != nil {
		return "", fmt.Errorf("%w: download: %v", domain.ErrBinaryUnavailable, err)
	}

	extracted := filepath.Join(staging, binaryName())
	var err error
	switch l.build.Format {
	case formatTarXz:
		err = extractTarXz(archive, binaryName(), extracted)
	case formatZip:
		err = extractZip(archive, binaryName(), extracted)
	default:
		err = fmt.Errorf("unknown archive format %q", l.build.Format)
	}
	if err != nil {
		return "", fmt.Errorf("%w: extract: %v", domain.ErrBinaryUnavailable, err)
	}

	if err := os.Chmod(extracted, 0o755); err != nil {
		return "", fmt.Errorf("%w: chmod: %v", domain.ErrBinaryUnavailable, err)
	}
	dest := filepath.Join(l.CacheDir, binaryName())
	if err := os.Rename(extracted, dest); err != nil {
		return "", fmt.Errorf("%w: install: %v", domain.ErrBinaryUnavailable, err)
	}

	l.Log.Info().Str("path", dest).Msg("ffmpeg cached")
	return filepath.Abs(dest)
}

func (l *Locator) fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, resp.Body)
	return err
}

// extractTarXz copies the first regular tar entry whose base name matches
// want into dest.
func extractTarXz(archive, want, dest string) error {
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer f.Close()

	xr, err := xz.NewReader(f)
	if err != nil {
		return err
	}
	tr := tar.NewReader(xr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s not found in archive", want)
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != want {
			continue
		}
		return writeFile(dest, tr)
	}
}

// extractZip copies the first zip entry whose base name matches want
// into dest.
func extractZip(archive, want, dest string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() || filepath.Base(zf.Name) != want {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return err
		}
		err = writeFile(dest, rc)
		rc.Close()
		return err
	}
	return fmt.Errorf("%s not found in archive", want)
}

func writeFile(dest string, r io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
