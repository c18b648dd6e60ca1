package ports

import "go.trai.ch/impact/internal/core/domain"

// ReportWriter persists the machine-readable report document.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ReportWriter interface {
	Write(report domain.Report, path string) error
}
