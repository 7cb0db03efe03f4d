// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/automap/internal/adapters/config"
	_ "go.trai.ch/automap/internal/adapters/gotypes"
	_ "go.trai.ch/automap/internal/adapters/logger"
	_ "go.trai.ch/automap/internal/adapters/manifest"
	_ "go.trai.ch/automap/internal/adapters/telemetry"
	_ "go.trai.ch/automap/internal/adapters/typecache"
	_ "go.trai.ch/automap/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/automap/internal/app"
	_ "go.trai.ch/automap/internal/engine/codegen"
	_ "go.trai.ch/automap/internal/engine/discovery"
	_ "go.trai.ch/automap/internal/engine/mapper"
)
