package ports

import "go.trai.ch/impact/internal/core/domain"

// ReportRenderer turns the report document into a human-readable byte stream.
// Rendering is outside the resolver core; this is its interface boundary.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ReportRenderer interface {
	Render(report domain.Report) ([]byte, error)
}
