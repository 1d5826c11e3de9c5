package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsdk/cmd/tsdk/commands"
	"go.trai.ch/tsdk/internal/app"
	"go.trai.ch/tsdk/internal/core/domain"
)

type mockApp struct {
	listFunc    func(ctx context.Context) (*app.Snapshot, error)
	useFunc     func(ctx context.Context, location string) (*app.Snapshot, error)
	watchFunc   func(ctx context.Context) error
	prefFunc    func(key string) (any, error)
	setPrefFunc func(key, raw string) error
}

func (m *mockApp) List(ctx context.Context) (*app.Snapshot, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return &app.Snapshot{}, nil
}

func (m *mockApp) Use(ctx context.Context, location string) (*app.Snapshot, error) {
	if m.useFunc != nil {
		return m.useFunc(ctx, location)
	}
	return &app.Snapshot{}, nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) Preference(key string) (any, error) {
	if m.prefFunc != nil {
		return m.prefFunc(key)
	}
	return nil, nil
}

func (m *mockApp) SetPreference(key, raw string) error {
	if m.setPrefFunc != nil {
		return m.setPrefFunc(key, raw)
	}
	return nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(mock)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func snapshotWithVersions() *app.Snapshot {
	def := domain.NewVersionRecord("/opt/tsdk/lib", nil, nil)
	ws := domain.NewVersionRecord("/ws/node_modules/typescript/lib", nil, nil)
	return &app.Snapshot{
		Default:  def,
		Current:  def,
		Versions: []*domain.VersionRecord{ws},
	}
}

func TestCommands_List(t *testing.T) {
	called := false
	mock := &mockApp{
		listFunc: func(context.Context) (*app.Snapshot, error) {
			called = true
			return snapshotWithVersions(), nil
		},
	}

	out, err := execute(t, mock, "list")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out, "/opt/tsdk/lib")
	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, "/ws/node_modules/typescript/lib")
	assert.Contains(t, out, "workspace SDK in use: false")
}

func TestCommands_Use(t *testing.T) {
	t.Run("passes the location through", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			useFunc: func(_ context.Context, location string) (*app.Snapshot, error) {
				captured = location
				return snapshotWithVersions(), nil
			},
		}

		_, err := execute(t, mock, "use", "/ws/node_modules/typescript/lib")
		require.NoError(t, err)
		assert.Equal(t, "/ws/node_modules/typescript/lib", captured)
	})

	t.Run("defaults to the bundled SDK without an argument", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			useFunc: func(_ context.Context, location string) (*app.Snapshot, error) {
				captured = location
				return snapshotWithVersions(), nil
			},
		}

		_, err := execute(t, mock, "use")
		require.NoError(t, err)
		assert.Equal(t, "default", captured)
	})

	t.Run("returns error for unknown locations", func(t *testing.T) {
		mock := &mockApp{
			useFunc: func(context.Context, string) (*app.Snapshot, error) {
				return nil, domain.ErrNoSuchVersion
			},
		}

		_, err := execute(t, mock, "use", "/nowhere")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoSuchVersion)
	})
}

func TestCommands_Watch(t *testing.T) {
	called := false
	mock := &mockApp{
		watchFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	_, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Config(t *testing.T) {
	t.Run("get prints the JSON value", func(t *testing.T) {
		mock := &mockApp{
			prefFunc: func(key string) (any, error) {
				assert.Equal(t, "typescript.tsdk", key)
				return "/opt/lib", nil
			},
		}

		out, err := execute(t, mock, "config", "get", "typescript.tsdk")
		require.NoError(t, err)
		assert.Equal(t, "\"/opt/lib\"\n", out)
	})

	t.Run("set forwards key and raw value", func(t *testing.T) {
		var gotKey, gotRaw string
		mock := &mockApp{
			setPrefFunc: func(key, raw string) error {
				gotKey, gotRaw = key, raw
				return nil
			},
		}

		_, err := execute(t, mock, "config", "set", "pluginDev.experimentalCommands", "true")
		require.NoError(t, err)
		assert.Equal(t, "pluginDev.experimentalCommands", gotKey)
		assert.Equal(t, "true", gotRaw)
	})

	t.Run("set surfaces store errors", func(t *testing.T) {
		mock := &mockApp{
			setPrefFunc: func(string, string) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "config", "set", "key", "value")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tsdk version")
}
