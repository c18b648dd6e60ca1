package s3

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/adapters/config"
	"go.trai.ch/impact/internal/core/ports"
)

const NodeID graft.ID = "adapter.remote_cache"

func init() {
	graft.Register(graft.Node[ports.RemoteCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RemoteCache, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(Config{
				Endpoint:  settings.Remote.Endpoint,
				Region:    settings.Remote.Region,
				AccessKey: settings.Remote.AccessKey,
				SecretKey: settings.Remote.SecretKey,
				Bucket:    settings.Remote.Bucket,
				Prefix:    settings.Remote.Prefix,
				UseSSL:    settings.Remote.UseSSL,
			})
		},
	})
}
