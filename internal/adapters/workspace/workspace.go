// Package workspace provides workspace root enumeration backed by the
// tsdk.work.yaml workspace file.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/events"
	"go.trai.ch/tsdk/internal/core/ports"
	"gopkg.in/yaml.v3"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workfile represents the structure of the tsdk.work.yaml workspace file.
type Workfile struct {
	Version string   `yaml:"version"`
	Roots   []string `yaml:"roots"`
}

// Workspace implements ports.Workspace. Roots come from a workspace file
// found by walking up from the working directory; without one, the working
// directory itself is the single root.
type Workspace struct {
	mu      sync.Mutex
	path    string
	roots   []string
	changed events.Emitter[[]string]
}

// Load discovers the workspace file starting at cwd and reads the root set.
func Load(cwd string) (*Workspace, error) {
	w := &Workspace{path: findWorkfile(cwd)}

	if w.path == "" {
		w.roots = []string{filepath.Clean(cwd)}
		return w, nil
	}

	roots, err := readRoots(w.path)
	if err != nil {
		return nil, err
	}
	w.roots = roots
	return w, nil
}

// Path returns the discovered workspace file path, or "" when the working
// directory is the implicit single root.
func (w *Workspace) Path() string {
	return w.path
}

// Roots returns a snapshot of the current workspace root directories.
func (w *Workspace) Roots() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.roots)
}

// OnDidChangeRoots registers a callback invoked with the new root set
// whenever it changes.
func (w *Workspace) OnDidChangeRoots(fn func(roots []string)) (cancel func()) {
	return w.changed.Subscribe(fn)
}

// Reload re-reads the workspace file and notifies subscribers when the root
// set actually changed. It is a no-op for implicit single-root workspaces.
func (w *Workspace) Reload() error {
	if w.path == "" {
		return nil
	}

	roots, err := readRoots(w.path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if slices.Equal(roots, w.roots) {
		w.mu.Unlock()
		return nil
	}
	w.roots = roots
	w.mu.Unlock()

	w.changed.Emit(slices.Clone(roots))
	return nil
}

// findWorkfile walks up from cwd looking for the workspace file.
func findWorkfile(cwd string) string {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// readRoots parses the workspace file and resolves its roots against the
// file's directory, deduplicating and sorting for determinism.
func readRoots(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWorkfileReadFailed, err)
	}

	var workfile Workfile
	if err := yaml.Unmarshal(data, &workfile); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWorkfileParseFailed, err)
	}

	base := filepath.Dir(path)
	seen := make(map[string]struct{})
	roots := make([]string, 0, len(workfile.Roots))
	for _, root := range workfile.Roots {
		if !filepath.IsAbs(root) {
			root = filepath.Join(base, root)
		}
		root = filepath.Clean(root)
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}

	if len(roots) == 0 {
		roots = []string{base}
	}

	slices.Sort(roots)
	return roots, nil
}
