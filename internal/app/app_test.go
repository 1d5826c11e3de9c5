package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsdk/internal/adapters/fsreader"
	"go.trai.ch/tsdk/internal/adapters/logger"
	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/adapters/statestore"
	"go.trai.ch/tsdk/internal/adapters/watcher"
	"go.trai.ch/tsdk/internal/adapters/workspace"
	"go.trai.ch/tsdk/internal/app"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/tsdk/internal/core/ports/mocks"
	"go.trai.ch/tsdk/internal/manager"
	"go.trai.ch/tsdk/internal/plugindev"
	"go.uber.org/mock/gomock"
)

// writeInstall lays out an SDK installation: a lib directory with the server
// entry point and a sibling package manifest.
func writeInstall(t *testing.T, libDir, version string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(libDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, domain.EntryPointFileName), []byte("// tsserver"), 0o644))
	manifest := `{"name":"typescript","version":"` + version + `"}`
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(libDir), domain.ManifestFileName), []byte(manifest), 0o644))
}

type testEnv struct {
	app        *app.App
	root       string
	bundledLib string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	root := t.TempDir()
	bundledLib := filepath.Join(t.TempDir(), "bundled", "lib")
	writeInstall(t, bundledLib, "5.0.4")
	writeInstall(t, filepath.Join(root, "node_modules", "typescript", "lib"), "5.4.2")

	log := logger.New()
	log.SetOutput(&bytes.Buffer{})

	ws, err := workspace.Load(root)
	require.NoError(t, err)

	store, err := prefs.NewStore(filepath.Join(root, domain.TsdkDirName, domain.SettingsFileName), log)
	require.NoError(t, err)
	require.NoError(t, store.RegisterSchema(manager.Schema()))
	require.NoError(t, plugindev.Register(store))

	ctrl := gomock.NewController(t)
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).
		AnyTimes()

	mgr := manager.New(
		bundledLib,
		fsreader.NewReader(),
		statestore.NewStore(root),
		store,
		ws,
		log,
		tracer,
	)

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	return &testEnv{
		app:        app.New(mgr, w, ws, store, plugindev.NewConfig(store), log),
		root:       root,
		bundledLib: bundledLib,
	}
}

func (e *testEnv) workspaceLib() string {
	return filepath.Join(e.root, "node_modules", "typescript", "lib")
}

func TestApp_List(t *testing.T) {
	env := newTestEnv(t)

	snap, err := env.app.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5.0.4", snap.Default.Version())
	assert.True(t, snap.Current.Equal(snap.Default))
	assert.False(t, snap.UseWorkspace)
	require.Len(t, snap.Versions, 1)
	assert.Equal(t, "5.4.2", snap.Versions[0].Version())
	assert.Equal(t, env.workspaceLib(), snap.Versions[0].Location())
}

func TestApp_Use(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snap, err := env.app.Use(ctx, env.workspaceLib())
	require.NoError(t, err)
	assert.Equal(t, "5.4.2", snap.Current.Version())
	assert.True(t, snap.UseWorkspace)

	// The flag survives into a fresh manager over the same state store.
	flag, err := statestore.NewStore(env.root).GetBool(ctx, domain.UseWorkspaceTsdkStateKey)
	require.NoError(t, err)
	assert.True(t, flag)

	snap, err = env.app.Use(ctx, "default")
	require.NoError(t, err)
	assert.True(t, snap.Current.Equal(snap.Default))
	assert.False(t, snap.UseWorkspace)
}

func TestApp_Use_UnknownLocation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.app.Use(context.Background(), filepath.Join(env.root, "nowhere", "lib"))
	assert.ErrorIs(t, err, domain.ErrNoSuchVersion)
}

func TestApp_Preferences(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.app.SetPreference(domain.TsdkPathPreference, "/opt/custom/lib"))
	value, err := env.app.Preference(domain.TsdkPathPreference)
	require.NoError(t, err)
	assert.Equal(t, "/opt/custom/lib", value)

	// Raw values parse into JSON scalars before validation.
	require.NoError(t, env.app.SetPreference(plugindev.ExperimentalCommandsKey, "true"))
	value, err = env.app.Preference(plugindev.ExperimentalCommandsKey)
	require.NoError(t, err)
	assert.Equal(t, true, value)

	_, err = env.app.Preference("unknown.key")
	assert.ErrorIs(t, err, domain.ErrSchemaUnknownKey)

	assert.ErrorIs(t, env.app.SetPreference(plugindev.TraceServerKey, "loud"), domain.ErrSchemaTypeMismatch)
}

func TestApp_Watch_PicksUpManifestChanges(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- env.app.Watch(ctx)
	}()

	// Let the watcher settle, then bump the installed version on disk.
	time.Sleep(200 * time.Millisecond)
	manifest := filepath.Join(env.root, "node_modules", "typescript", domain.ManifestFileName)
	require.NoError(t, os.WriteFile(manifest, []byte(`{"version":"5.5.0"}`), 0o644))

	require.Eventually(t, func() bool {
		rec := env.app.Manager().Find(env.workspaceLib())
		return rec != nil && rec.Version() == "5.5.0"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not shut down after cancellation")
	}
}
