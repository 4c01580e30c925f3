package cookbook

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cheflow/internal/core/ports"
)

// NodeID is the unique identifier for the cookbook loader Graft node.
const NodeID graft.ID = "adapter.cookbook"

func init() {
	graft.Register(graft.Node[ports.CookbookLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CookbookLoader, error) {
			return NewLoader(), nil
		},
	})
}
