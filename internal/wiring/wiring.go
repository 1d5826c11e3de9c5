// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsdk/internal/adapters/fsreader"
	_ "go.trai.ch/tsdk/internal/adapters/logger"
	_ "go.trai.ch/tsdk/internal/adapters/prefs"
	_ "go.trai.ch/tsdk/internal/adapters/statestore"
	_ "go.trai.ch/tsdk/internal/adapters/telemetry"
	_ "go.trai.ch/tsdk/internal/adapters/watcher"
	_ "go.trai.ch/tsdk/internal/adapters/workspace"
	// Register domain and app nodes.
	_ "go.trai.ch/tsdk/internal/app"
	_ "go.trai.ch/tsdk/internal/manager"
	_ "go.trai.ch/tsdk/internal/plugindev"
)
