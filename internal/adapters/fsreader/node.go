package fsreader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsdk/internal/core/ports"
)

// NodeID is the unique identifier for the content reader Graft node.
const NodeID graft.ID = "adapter.fsreader"

func init() {
	graft.Register(graft.Node[ports.ContentReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentReader, error) {
			return NewReader(), nil
		},
	})
}
