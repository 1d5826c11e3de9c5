// Package manager maintains the set of SDK installations discoverable from
// the workspace and the currently active selection.
package manager

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/events"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Manager tracks the discoverable SDK versions and the active selection.
//
// The active version is always either the bundled default or a member of the
// current discovered set; every assignment is normalized through
// ValidateVersion, so a selection whose source disappears degrades to the
// default on the next validation without explicit eviction.
type Manager struct {
	reader    ports.ContentReader
	state     ports.StateStore
	prefs     ports.Preferences
	workspace ports.Workspace
	logger    ports.Logger
	tracer    ports.Tracer

	mu               sync.Mutex
	defaultVersion   *domain.VersionRecord
	current          *domain.VersionRecord
	useWorkspaceTsdk bool
	discovered       map[string]*domain.VersionRecord
	generation       uint64

	changed events.Emitter[*domain.VersionRecord]
}

// New creates a Manager whose built-in default is the SDK at defaultLocation.
func New(
	defaultLocation string,
	reader ports.ContentReader,
	state ports.StateStore,
	prefs ports.Preferences,
	workspace ports.Workspace,
	logger ports.Logger,
	tracer ports.Tracer,
) *Manager {
	def := domain.NewVersionRecord(defaultLocation, reader, logger)
	return &Manager{
		reader:         reader,
		state:          state,
		prefs:          prefs,
		workspace:      workspace,
		logger:         logger,
		tracer:         tracer,
		defaultVersion: def,
		current:        def,
		discovered:     make(map[string]*domain.VersionRecord),
	}
}

// Initialize restores the persisted selection flag, runs the first
// reconciliation and, when the previous session used a workspace SDK,
// re-selects the first discoverable workspace version.
func (m *Manager) Initialize(ctx context.Context) {
	restore, err := m.state.GetBool(ctx, domain.UseWorkspaceTsdkStateKey)
	if err != nil {
		m.logger.Error(zerr.Wrap(err, "failed to restore workspace SDK flag"))
	}

	m.defaultVersion.Resolve(ctx)
	m.Reconcile(ctx)

	if restore {
		if versions := m.WorkspaceVersions(); len(versions) > 0 {
			m.SetCurrent(ctx, versions[0])
		}
	}
}

// DefaultVersion returns the built-in default record.
func (m *Manager) DefaultVersion() *domain.VersionRecord {
	return m.defaultVersion
}

// Current returns the active version record.
func (m *Manager) Current() *domain.VersionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetCurrent assigns the active version. The assignment is filtered through
// ValidateVersion; an illegal assignment silently normalizes to the default.
// Subscribers are notified exactly once per effective change, and never for
// a reassignment of an equal value.
func (m *Manager) SetCurrent(ctx context.Context, v *domain.VersionRecord) {
	m.apply(ctx, v)
}

// UseWorkspaceTsdk reports whether the active selection originated from the
// workspace rather than the built-in default.
func (m *Manager) UseWorkspaceTsdk() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.useWorkspaceTsdk
}

// WorkspaceVersions returns the currently valid discovered records, sorted
// by location. Invalid entries stay in the internal set but are filtered
// here.
func (m *Manager) WorkspaceVersions() []*domain.VersionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	versions := make([]*domain.VersionRecord, 0, len(m.discovered))
	for _, rec := range m.discovered {
		if rec.Valid() {
			versions = append(versions, rec)
		}
	}
	slices.SortFunc(versions, func(a, b *domain.VersionRecord) int {
		return strings.Compare(a.Location(), b.Location())
	})
	return versions
}

// Find returns the discovered record at the given location, or nil.
func (m *Manager) Find(location string) *domain.VersionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.discovered[filepath.Clean(location)]
}

// ValidateVersion is the single source of truth for whether a record is a
// legal selection: the default stays the default, a record matching a valid
// discovered location maps to that member, and everything else falls back to
// the default.
func (m *Manager) ValidateVersion(v *domain.VersionRecord) *domain.VersionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked(v)
}

// OnDidChange registers a callback invoked with the newly active record
// after every effective selection change, or nil when the selection fell
// back to the default. Past values are not replayed.
func (m *Manager) OnDidChange(fn func(v *domain.VersionRecord)) (cancel func()) {
	return m.changed.Subscribe(fn)
}

// Reconcile rebuilds the discovered set from the override preference and the
// conventional install path, expanded against every workspace root. All
// candidate resolutions run concurrently and are joined before publication.
// A reconciliation that was overtaken by a newer one discards its result.
func (m *Manager) Reconcile(ctx context.Context) {
	ctx, span := m.tracer.Start(ctx, "manager.reconcile")
	defer span.End()

	m.mu.Lock()
	m.generation++
	seq := m.generation
	m.mu.Unlock()

	override := m.prefs.String(domain.TsdkPathPreference)
	roots := m.workspace.Roots()

	candidates := make(map[string]*domain.VersionRecord)
	for _, source := range []string{override, domain.DefaultTsdkRelativePath} {
		if source == "" {
			continue
		}
		for _, location := range expand(source, roots) {
			if _, ok := candidates[location]; ok {
				continue
			}
			candidates[location] = domain.NewVersionRecord(location, m.reader, m.logger)
		}
	}
	span.SetAttribute("candidates", len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for _, rec := range candidates {
		g.Go(func() error {
			rec.Resolve(gctx)
			return nil
		})
	}
	_ = g.Wait()

	m.mu.Lock()
	if seq != m.generation {
		// A newer reconciliation started while this one was resolving.
		m.mu.Unlock()
		span.SetAttribute("stale", true)
		return
	}
	m.discovered = candidates
	m.mu.Unlock()

	m.apply(ctx, m.Current())
}

// HandleChanges re-resolves, in place, every tracked record whose manifest
// or location is covered by the change batch, then re-validates the active
// selection once. No records are created or removed.
func (m *Manager) HandleChanges(ctx context.Context, batch ports.ChangeBatch) {
	m.mu.Lock()
	var affected []*domain.VersionRecord
	for _, rec := range m.discovered {
		if batch.Covers(rec.ManifestPath()) || batch.Covers(rec.Location()) {
			affected = append(affected, rec)
		}
	}
	m.mu.Unlock()

	if len(affected) == 0 {
		return
	}

	ctx, span := m.tracer.Start(ctx, "manager.refresh")
	defer span.End()
	span.SetAttribute("affected", len(affected))

	g, gctx := errgroup.WithContext(ctx)
	for _, rec := range affected {
		g.Go(func() error {
			rec.Resolve(gctx)
			return nil
		})
	}
	_ = g.Wait()

	m.apply(ctx, m.Current())
}

// apply validates v, swaps the selection to the validated collection member
// and, on an effective change, recomputes and persists the workspace flag
// and notifies subscribers once.
func (m *Manager) apply(ctx context.Context, v *domain.VersionRecord) {
	m.mu.Lock()
	validated := m.validateLocked(v)
	changed := !validated.Equal(m.current)
	// Swap to the current collection member even when equal, so the
	// selection never points at a record from a replaced set.
	m.current = validated
	if changed {
		m.useWorkspaceTsdk = !validated.Equal(m.defaultVersion)
	}
	flag := m.useWorkspaceTsdk
	isDefault := validated.Equal(m.defaultVersion)
	m.mu.Unlock()

	if !changed {
		return
	}

	if err := m.state.SetBool(ctx, domain.UseWorkspaceTsdkStateKey, flag); err != nil {
		m.logger.Error(zerr.Wrap(err, "failed to persist workspace SDK flag"))
	}

	if isDefault {
		m.changed.Emit(nil)
	} else {
		m.changed.Emit(validated)
	}
}

func (m *Manager) validateLocked(v *domain.VersionRecord) *domain.VersionRecord {
	if v.Equal(m.defaultVersion) {
		return m.defaultVersion
	}
	if v != nil {
		if rec, ok := m.discovered[v.Location()]; ok && rec.Valid() {
			return rec
		}
	}
	return m.defaultVersion
}

// expand resolves a configured source path against the workspace roots.
// Absolute sources are used as-is; relative ones are expanded against every
// root.
func expand(source string, roots []string) []string {
	if filepath.IsAbs(source) {
		return []string{filepath.Clean(source)}
	}
	locations := make([]string, 0, len(roots))
	for _, root := range roots {
		locations = append(locations, filepath.Join(root, source))
	}
	return locations
}
