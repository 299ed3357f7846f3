// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mum/internal/adapters/config"
	_ "go.trai.ch/mum/internal/adapters/logger"
	_ "go.trai.ch/mum/internal/adapters/store"
	// Register app nodes.
	_ "go.trai.ch/mum/internal/app"
)
