package gradle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config"
	"go.trai.ch/impact/internal/adapters/logger"
	"go.trai.ch/impact/internal/core/ports"
)

const NodeID graft.ID = "adapter.graph_exporter"

func init() {
	graft.Register(graft.Node[ports.GraphExporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.GraphExporter, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExporter(
				settings.Root,
				settings.Gradle.Wrapper,
				settings.Gradle.Fallback,
				settings.Gradle.ExportTask,
				log,
			), nil
		},
	})
}
