package typecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/adapters/logger"
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/automap/internal/engine/discovery" //nolint:depguard // Wired in adapter wiring
)

// NodeID is the unique identifier for the type cache Graft node.
const NodeID graft.ID = "adapter.type_cache"

func init() {
	graft.Register(graft.Node[ports.TypeCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{discovery.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TypeCache, error) {
			describer, err := graft.Dep[ports.Describer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(describer, WithLogger(log)), nil
		},
	})
}
