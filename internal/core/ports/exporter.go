package ports

import "context"

// GraphExporter regenerates the graph snapshot by invoking the build tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type GraphExporter interface {
	// Export runs the export task with optional pass-through flags.
	// A non-zero exit yields domain.ErrGraphExportFailed; the run cannot
	// proceed without a graph.
	Export(ctx context.Context, extraArgs []string) error
}
