// Package app implements the application layer for tsdk.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/adapters/watcher"
	"go.trai.ch/tsdk/internal/adapters/workspace"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/tsdk/internal/manager"
	"go.trai.ch/tsdk/internal/plugindev"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	manager   *manager.Manager
	watcher   ports.Watcher
	workspace *workspace.Workspace
	prefs     *prefs.Store
	plugin    *plugindev.Config
	logger    ports.Logger

	initOnce sync.Once
}

// New creates a new App instance.
func New(
	mgr *manager.Manager,
	w ports.Watcher,
	ws *workspace.Workspace,
	store *prefs.Store,
	plugin *plugindev.Config,
	log ports.Logger,
) *App {
	return &App{
		manager:   mgr,
		watcher:   w,
		workspace: ws,
		prefs:     store,
		plugin:    plugin,
		logger:    log,
	}
}

// Manager exposes the version set manager.
func (a *App) Manager() *manager.Manager {
	return a.manager
}

// PluginConfig exposes the plugin development preference proxy.
func (a *App) PluginConfig() *plugindev.Config {
	return a.plugin
}

// Snapshot is a point-in-time view of the version set for presentation.
type Snapshot struct {
	Default      *domain.VersionRecord
	Current      *domain.VersionRecord
	Versions     []*domain.VersionRecord
	UseWorkspace bool
}

// List discovers the workspace versions and returns a snapshot.
func (a *App) List(ctx context.Context) (*Snapshot, error) {
	a.initialize(ctx)
	return a.snapshot(), nil
}

// Use selects the SDK at the given location, or the bundled default for
// "default". An illegal selection silently normalizes to the default; the
// returned snapshot reflects the effective outcome.
func (a *App) Use(ctx context.Context, location string) (*Snapshot, error) {
	a.initialize(ctx)

	if location == "" || location == "default" {
		a.manager.SetCurrent(ctx, a.manager.DefaultVersion())
		return a.snapshot(), nil
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve SDK location "+location)
	}

	rec := a.manager.Find(abs)
	if rec == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSuchVersion, ""), "location", abs)
	}

	a.manager.SetCurrent(ctx, rec)
	return a.snapshot(), nil
}

// Preference returns the effective value of a registered preference key.
func (a *App) Preference(key string) (any, error) {
	v := a.prefs.Value(key)
	if v == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSchemaUnknownKey, ""), "key", key)
	}
	return v, nil
}

// SetPreference parses raw into a JSON scalar and writes it to the settings
// file through the preference store.
func (a *App) SetPreference(key, raw string) error {
	var value any = raw
	switch {
	case raw == "true" || raw == "false":
		value = raw == "true"
	default:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			value = n
		}
	}
	return a.prefs.Set(key, value)
}

/// Watch runs the event loop: it reconciles on workspace root and override
// preference changes, and re-resolves tracked records in place when their
// manifests change on disk. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	a.initialize(ctx)
	a.logSelection(a.manager.Current())

	cancelSelection := a.manager.OnDidChange(func(v *domain.VersionRecord) {
		a.logSelection(v)
	})
	defer cancelSelection()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(batch ports.ChangeBatch) {
		a.handleBatch(ctx, batch)
	})

	cancelRoots := a.workspace.OnDidChangeRoots(func(roots []string) {
		for _, root := range roots {
			if err := a.watcher.Add(root); err != nil {
				a.logger.Error(err)
			}
		}
		a.manager.Reconcile(ctx)
	})
	defer cancelRoots()

	cancelPref := a.prefs.OnDidChange(domain.TsdkPathPreference, func() {
		a.manager.Reconcile(ctx)
	})
	defer cancelPref()

	roots := a.workspace.Roots()
	if p := a.workspace.Path(); p != "" {
		roots = append(roots, filepath.Dir(p))
	}
	if err := a.watcher.Start(ctx, roots...); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		if err := a.watcher.Stop(); err != nil {
			a.logger.Error(err)
		}
		debouncer.Flush()
		return nil
	})

	return g.Wait()
}

// handleBatch reloads the workspace and settings files when they are part of
// the batch, then lets the manager refresh affected records.
func (a *App) handleBatch(ctx context.Context, batch ports.ChangeBatch) {
	if p := a.workspace.Path(); p != "" && batch.Covers(p) {
		if err := a.workspace.Reload(); err != nil {
			a.logger.Error(err)
		}
	}
	if batch.Covers(a.prefs.Path()) {
		a.prefs.Reload()
	}
	a.manager.HandleChanges(ctx, batch)
}

func (a *App) initialize(ctx context.Context) {
	a.initOnce.Do(func() {
		a.manager.Initialize(ctx)
	})
}

func (a *App) snapshot() *Snapshot {
	return &Snapshot{
		Default:      a.manager.DefaultVersion(),
		Current:      a.manager.Current(),
		Versions:     a.manager.WorkspaceVersions(),
		UseWorkspace: a.manager.UseWorkspaceTsdk(),
	}
}

func (a *App) logSelection(v *domain.VersionRecord) {
	if v == nil {
		v = a.manager.DefaultVersion()
	}
	version := v.Version()
	if version == "" {
		version = "unresolved"
	}
	a.logger.Info(fmt.Sprintf("using SDK %s (%s)", version, v.Location()))
}
