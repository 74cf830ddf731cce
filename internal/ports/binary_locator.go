package ports

import "context"

// BinaryLocator resolves an absolute path to a usable ffmpeg executable,
// transparently acquiring and caching it on first use. Implementations
// return an error wrapping domain.ErrBinaryUnavailable when no binary
// can be produced.
type BinaryLocator interface {
	Locate(ctx context.Context) (string, error)
}
