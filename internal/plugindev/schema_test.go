package plugindev_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports/mocks"
	"go.trai.ch/tsdk/internal/plugindev"
	"go.uber.org/mock/gomock"
)

func TestSchema_Golden(t *testing.T) {
	t.Parallel()

	data, err := json.MarshalIndent(plugindev.Schema(), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "schema", data)
}

func newTestConfig(t *testing.T, settings string) *plugindev.Config {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	if settings != "" {
		require.NoError(t, os.WriteFile(path, []byte(settings), 0o644))
	}

	store, err := prefs.NewStore(path, logger)
	require.NoError(t, err)
	require.NoError(t, plugindev.Register(store))
	return plugindev.NewConfig(store)
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, "")

	configs, err := cfg.BuildConfigurations()
	require.NoError(t, err)
	assert.Empty(t, configs)
	assert.False(t, cfg.ExperimentalCommands())
	assert.Equal(t, plugindev.TraceOff, cfg.TraceServer())
}

func TestConfig_StoredValues(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, `{
		"pluginDev.buildConfigurations": [
			{"name": "debug", "args": ["--sourcemap"], "env": {"NODE_ENV": "development"}},
			{"name": "release"}
		],
		"pluginDev.experimentalCommands": true,
		"pluginDev.trace.server": "verbose"
	}`)

	configs, err := cfg.BuildConfigurations()
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "debug", configs[0].Name)
	assert.Equal(t, []string{"--sourcemap"}, configs[0].Args)
	assert.Equal(t, map[string]string{"NODE_ENV": "development"}, configs[0].Env)
	assert.Equal(t, "release", configs[1].Name)

	assert.True(t, cfg.ExperimentalCommands())
	assert.Equal(t, plugindev.TraceVerbose, cfg.TraceServer())
}

func TestConfig_TraceEnumViolationFallsBack(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, `{"pluginDev.trace.server": "loud"}`)

	assert.Equal(t, plugindev.TraceOff, cfg.TraceServer())
}

func TestRegister_Twice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	store, err := prefs.NewStore(filepath.Join(t.TempDir(), domain.SettingsFileName), logger)
	require.NoError(t, err)

	require.NoError(t, plugindev.Register(store))
	assert.ErrorIs(t, plugindev.Register(store), domain.ErrSchemaDuplicateKey)
}
