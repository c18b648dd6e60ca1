package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config"
	"go.trai.ch/impact/internal/core/ports"
)

const NodeID graft.ID = "adapter.source_control"

func init() {
	graft.Register(graft.Node[ports.SourceControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SourceControl, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings.Root), nil
		},
	})
}
