package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/internal/core/ports"
)

const (
	// RendererNodeID identifies the HTML renderer node.
	RendererNodeID graft.ID = "adapter.report_renderer"
	// WriterNodeID identifies the JSON writer node.
	WriterNodeID graft.ID = "adapter.report_writer"
)

func init() {
	graft.Register(graft.Node[ports.ReportRenderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportRenderer, error) {
			return NewHTMLRenderer(), nil
		},
	})

	graft.Register(graft.Node[ports.ReportWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportWriter, error) {
			return NewJSONWriter(), nil
		},
	})
}
