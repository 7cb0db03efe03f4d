package gotypes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/adapters/logger"
	"go.trai.ch/automap/internal/core/ports"
)

// NodeID is the unique identifier for the package inspector Graft node.
const NodeID graft.ID = "adapter.package_inspector"

func init() {
	graft.Register(graft.Node[ports.PackageInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageInspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
