package workspace

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the workspace Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[*Workspace]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Workspace, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return Load(cwd)
		},
	})
}
