// Package ports defines the core interfaces for the application.
package ports

import "context"

// ContentReader reads raw file contents for manifest resolution.
// Implementations classify failures with domain.ErrContentNotFound and
// domain.ErrContentIsDirectory.
//
//go:generate mockgen -source=content_reader.go -destination=mocks/mock_content_reader.go -package=mocks
type ContentReader interface {
	// Read returns the contents of the file at the given path.
	Read(ctx context.Context, path string) ([]byte, error)
}
