package plugindev

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/adapters/prefs"
)

// NodeID is the unique identifier for the plugin development config node.
const NodeID graft.ID = "plugindev.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{prefs.NodeID},
		Run: func(ctx context.Context) (*Config, error) {
			store, err := graft.Dep[*prefs.Store](ctx)
			if err != nil {
				return nil, err
			}
			if err := Register(store); err != nil {
				return nil, err
			}
			return NewConfig(store), nil
		},
	})
}
