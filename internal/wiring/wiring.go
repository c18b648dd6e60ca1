// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/impact/internal/adapters/config"
	_ "go.trai.ch/impact/internal/adapters/fs"
	_ "go.trai.ch/impact/internal/adapters/git"
	_ "go.trai.ch/impact/internal/adapters/gradle"
	_ "go.trai.ch/impact/internal/adapters/logger"
	_ "go.trai.ch/impact/internal/adapters/report"
	_ "go.trai.ch/impact/internal/adapters/s3"
	// Register app and engine nodes.
	_ "go.trai.ch/impact/internal/app"
	_ "go.trai.ch/impact/internal/engine/cache"
)
