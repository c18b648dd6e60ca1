package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/impact/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/impact/internal/adapters/git"    //nolint:depguard // Wired in app layer
	"go.trai.ch/impact/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/impact/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/impact/internal/engine/cache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			git.NodeID,
			fs.SnapshotNodeID,
			report.RendererNodeID,
			report.WriterNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			coordinator, err := graft.Dep[*cache.Coordinator](ctx)
			if err != nil {
				return nil, err
			}
			scm, err := graft.Dep[ports.SourceControl](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.ReportRenderer](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.ReportWriter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(coordinator, scm, store, renderer, writer, log, Options{
				IgnorePatterns: settings.IgnorePatterns,
				GlobalTriggers: settings.GlobalTriggers,
				DefaultTasks:   settings.DefaultTasks,
			}), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}
