package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config"
	"go.trai.ch/impact/internal/adapters/fs"
	"go.trai.ch/impact/internal/adapters/gradle"
	"go.trai.ch/impact/internal/adapters/logger"
	"go.trai.ch/impact/internal/adapters/s3"
	"go.trai.ch/impact/internal/core/ports"
)

const NodeID graft.ID = "engine.cache_coordinator"

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.HasherNodeID,
			fs.SnapshotNodeID,
			s3.NodeID,
			gradle.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ConfigHasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			remote, err := graft.Dep[ports.RemoteCache](ctx)
			if err != nil {
				return nil, err
			}
			exporter, err := graft.Dep[ports.GraphExporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(hasher, store, remote, exporter, log, settings.Root), nil
		},
	})
}
