package ports

import (
	"context"
	"iter"
	"path/filepath"
	"strings"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// ChangeBatch is a coalesced set of changed paths delivered by the debouncer.
type ChangeBatch []string

// Covers reports whether the given location is affected by this batch,
// either directly or through a changed ancestor directory.
func (b ChangeBatch) Covers(location string) bool {
	sep := string(filepath.Separator)
	for _, p := range b {
		if p == location || strings.HasPrefix(location, p+sep) {
			return true
		}
	}
	return false
}

// Watcher defines the interface for watching file system changes.
type Watcher interface {
	// Start begins watching the given root directories recursively.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, roots ...string) error
	// Add starts watching an additional root directory recursively.
	Add(root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
