// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/makerun/internal/adapters/cas"
	_ "go.trai.ch/makerun/internal/adapters/config"
	_ "go.trai.ch/makerun/internal/adapters/fs"
	_ "go.trai.ch/makerun/internal/adapters/logger"
	_ "go.trai.ch/makerun/internal/adapters/shell"
	_ "go.trai.ch/makerun/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/makerun/internal/app"
)
