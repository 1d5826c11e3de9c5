// Package fsreader implements the content reader over the local file system.
package fsreader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentReader = (*Reader)(nil)

// Reader reads file contents from the local file system and classifies
// failures into the domain error taxonomy.
type Reader struct{}

// NewReader creates a new file system content reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the contents of the file at path. A missing file maps to
// domain.ErrContentNotFound and a directory to domain.ErrContentIsDirectory;
// everything else wraps domain.ErrContentReadFailed.
func (r *Reader) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, zerr.With(zerr.Wrap(domain.ErrContentNotFound, ""), "path", path)
		case errors.Is(err, syscall.EISDIR):
			return nil, zerr.With(zerr.Wrap(domain.ErrContentIsDirectory, ""), "path", path)
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrContentReadFailed, err)
		}
	}
	return data, nil
}
