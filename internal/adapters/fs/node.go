package fs

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config"
	"go.trai.ch/impact/internal/core/ports"
)

const (
	// HasherNodeID identifies the build-config hasher node.
	HasherNodeID graft.ID = "adapter.config_hasher"
	// SnapshotNodeID identifies the snapshot store node.
	SnapshotNodeID graft.ID = "adapter.snapshot_store"
)

func init() {
	graft.Register(graft.Node[ports.ConfigHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ConfigHasher, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewConfigHasher(NewWalker(), settings.ConfigExtensions, settings.SkipDirs), nil
		},
	})

	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        SnapshotNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotStore(
				filepath.Join(settings.Root, settings.SnapshotFile),
				filepath.Join(settings.Root, settings.MarkerFile),
			), nil
		},
	})
}
