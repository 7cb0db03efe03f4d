package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/core/ports"
)

// NodeID is the unique identifier for the manifest opener Graft node.
const NodeID graft.ID = "adapter.manifest_store"

func init() {
	graft.Register(graft.Node[ports.ManifestOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestOpener, error) {
			return Open, nil
		},
	})
}
