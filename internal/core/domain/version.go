package domain

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ManifestReader reads the raw bytes of a file. Implementations classify
// failures with ErrContentNotFound and ErrContentIsDirectory so that callers
// can distinguish expected absence from real I/O errors.
type ManifestReader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// ErrorLogger receives unexpected resolution failures.
type ErrorLogger interface {
	Error(err error)
}

// VersionRecord represents one candidate installation of the SDK, identified
// by the absolute path of its lib directory. The semantic version string is
// resolved lazily from the sibling package manifest.
type VersionRecord struct {
	location string
	reader   ManifestReader
	log      ErrorLogger

	mu          sync.RWMutex
	version     string
	fingerprint uint64
}

// NewVersionRecord creates a record for the SDK lib directory at location.
// The version is unresolved until Resolve is called.
func NewVersionRecord(location string, reader ManifestReader, log ErrorLogger) *VersionRecord {
	return &VersionRecord{
		location: filepath.Clean(location),
		reader:   reader,
		log:      log,
	}
}

// Location returns the cleaned path of the SDK lib directory.
func (r *VersionRecord) Location() string {
	return r.location
}

// ManifestPath returns the path of the package manifest adjacent to the lib
// directory.
func (r *VersionRecord) ManifestPath() string {
	return filepath.Join(filepath.Dir(r.location), ManifestFileName)
}

// EntryPointPath returns the path of the server entry point inside the lib
// directory.
func (r *VersionRecord) EntryPointPath() string {
	return filepath.Join(r.location, EntryPointFileName)
}

// Version returns the resolved version string, or "" while unresolved.
func (r *VersionRecord) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Valid reports whether the manifest resolved to a non-empty version string.
func (r *VersionRecord) Valid() bool {
	return r.Version() != ""
}

// Equal reports whether two records identify the same SDK location.
// Resolution state does not participate in equality.
func (r *VersionRecord) Equal(other *VersionRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.location == other.location
}

// Resolve re-reads the package manifest and settles the version string.
// A missing manifest, a directory in its place, a malformed document, or a
// missing or non-string version field all settle the record as unresolved.
// Only unexpected read or parse failures are logged; nothing escapes to the
// caller. Resolve is idempotent and safe to call repeatedly.
func (r *VersionRecord) Resolve(ctx context.Context) {
	data, err := r.reader.Read(ctx, r.ManifestPath())
	if err != nil {
		if !errors.Is(err, ErrContentNotFound) && !errors.Is(err, ErrContentIsDirectory) && r.log != nil {
			r.log.Error(zerr.Wrap(err, "failed to read SDK manifest "+r.ManifestPath()))
		}
		r.settle("", 0)
		return
	}

	// Identical manifest bytes cannot change an already resolved version.
	sum := xxhash.Sum64(data)
	r.mu.RLock()
	unchanged := r.version != "" && r.fingerprint == sum
	r.mu.RUnlock()
	if unchanged {
		return
	}

	var manifest struct {
		Version any `json:"version"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		if r.log != nil {
			r.log.Error(zerr.Wrap(err, "failed to parse SDK manifest "+r.ManifestPath()))
		}
		r.settle("", 0)
		return
	}

	version, ok := manifest.Version.(string)
	if !ok || version == "" {
		r.settle("", 0)
		return
	}

	r.settle(version, sum)
}

func (r *VersionRecord) settle(version string, fingerprint uint64) {
	r.mu.Lock()
	r.version = version
	r.fingerprint = fingerprint
	r.mu.Unlock()
}
