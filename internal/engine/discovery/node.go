package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/core/ports"
)

// NodeID is the unique identifier for the discovery Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[ports.Describer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Describer, error) {
			return New(), nil
		},
	})
}
