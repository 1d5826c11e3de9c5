package manager

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/adapters/fsreader"
	"go.trai.ch/tsdk/internal/adapters/logger"
	"go.trai.ch/tsdk/internal/adapters/prefs"
	"go.trai.ch/tsdk/internal/adapters/statestore"
	"go.trai.ch/tsdk/internal/adapters/telemetry"
	"go.trai.ch/tsdk/internal/adapters/workspace"
	"go.trai.ch/tsdk/internal/core/ports"
)

// NodeID is the unique identifier for the version manager Graft node.
const NodeID graft.ID = "manager"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fsreader.NodeID,
			statestore.NodeID,
			prefs.NodeID,
			workspace.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			reader, err := graft.Dep[ports.ContentReader](ctx)
			if err != nil {
				return nil, err
			}
			state, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*prefs.Store](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[*workspace.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			if err := store.RegisterSchema(Schema()); err != nil {
				return nil, err
			}

			return New(bundledLocation(), reader, state, store, ws, log, tracer), nil
		},
	})
}

// bundledLocation returns the built-in SDK lib directory: the TSDK_BUNDLED
// environment override, or lib/ next to the executable.
func bundledLocation() string {
	if p := os.Getenv("TSDK_BUNDLED"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return "lib"
	}
	return filepath.Join(filepath.Dir(exe), "lib")
}
