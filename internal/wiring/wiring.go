// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bootstrap/internal/adapters/config"
	_ "go.trai.ch/bootstrap/internal/adapters/logger"
	_ "go.trai.ch/bootstrap/internal/adapters/shell"
	_ "go.trai.ch/bootstrap/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/bootstrap/internal/app"
	_ "go.trai.ch/bootstrap/internal/engine/driver"
)
