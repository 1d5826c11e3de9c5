package statestore

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/core/ports"
)

// NodeID is the unique identifier for the state store Graft node.
const NodeID graft.ID = "adapter.statestore"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewStore(cwd), nil
		},
	})
}
