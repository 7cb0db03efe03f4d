package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/automap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/adapters/gotypes"   //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/automap/internal/core/ports"
	"go.trai.ch/automap/internal/engine/codegen"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gotypes.NodeID,
			codegen.NodeID,
			manifest.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.PackageInspector](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*codegen.Generator](ctx)
	if err != nil {
		return nil, err
	}

	openManifest, err := graft.Dep[ports.ManifestOpener](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.SourceWatcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, inspector, generator, openManifest, w, tracer, log), nil
}
