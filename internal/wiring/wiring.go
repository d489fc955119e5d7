// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pdfdiff/internal/adapters/config"
	_ "go.trai.ch/pdfdiff/internal/adapters/interpreter"
	_ "go.trai.ch/pdfdiff/internal/adapters/logger"
	_ "go.trai.ch/pdfdiff/internal/adapters/pagecount"
	_ "go.trai.ch/pdfdiff/internal/adapters/setup"
	_ "go.trai.ch/pdfdiff/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pdfdiff/internal/app"
	_ "go.trai.ch/pdfdiff/internal/engine/compare"
)
