package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/adapters/logger"
	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/adapters/watcher"
	"go.trai.ch/tsdk/internal/adapters/workspace"
	"go.trai.ch/tsdk/internal/core/ports"
	"go.trai.ch/tsdk/internal/manager"
	"go.trai.ch/tsdk/internal/plugindev"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application object with the collaborators the CLI
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manager.NodeID,
			watcher.NodeID,
			workspace.NodeID,
			prefs.NodeID,
			plugindev.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			mgr, err := graft.Dep[*manager.Manager](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[*workspace.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*prefs.Store](ctx)
			if err != nil {
				return nil, err
			}
			plugin, err := graft.Dep[*plugindev.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(mgr, w, ws, store, plugin, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
