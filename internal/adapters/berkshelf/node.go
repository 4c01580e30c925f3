package berkshelf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cheflow/internal/adapters/logger"
	"go.trai.ch/cheflow/internal/core/ports"
)

// NodeID is the unique identifier for the lockfile engine Graft node.
const NodeID graft.ID = "adapter.berkshelf"

func init() {
	graft.Register(graft.Node[ports.LockfileEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LockfileEngine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})
}
