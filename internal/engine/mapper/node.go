package mapper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/automap/internal/adapters/typecache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/automap/internal/core/ports"
)

// NodeID is the unique identifier for the mapper Graft node.
const NodeID graft.ID = "engine.mapper"

func init() {
	graft.Register(graft.Node[*Mapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{typecache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Mapper, error) {
			cache, err := graft.Dep[ports.TypeCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, WithLogger(log)), nil
		},
	})
}
