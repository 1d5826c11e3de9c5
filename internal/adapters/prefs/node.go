package prefs

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/adapters/logger"
	"go.trai.ch/tsdk/internal/adapters/workspace"
	"go.trai.ch/tsdk/internal/core/domain"
	"go.trai.ch/tsdk/internal/core/ports"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.prefs"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{workspace.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			ws, err := graft.Dep[*workspace.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// Settings live next to the workspace file, or under the
			// single implicit root.
			base := ws.Roots()[0]
			if ws.Path() != "" {
				base = filepath.Dir(ws.Path())
			}
			return NewStore(filepath.Join(base, domain.TsdkDirName, domain.SettingsFileName), log)
		},
	})
}
