package chef

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cheflow/internal/adapters/logger"
	"go.trai.ch/cheflow/internal/core/ports"
)

// NodeID is the unique identifier for the Chef server connector Graft node.
const NodeID graft.ID = "adapter.chef"

func init() {
	graft.Register(graft.Node[ports.ServerConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ServerConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(log), nil
		},
	})
}
