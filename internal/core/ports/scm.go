// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/impact/internal/core/domain"
)

// SourceControl exposes the two reads the resolver needs from the
// source-control tool, both relative to a reference commit.
//
//go:generate go run go.uber.org/mock/mockgen -source=scm.go -destination=mocks/mock_scm.go -package=mocks
type SourceControl interface {
	// CommitsSince returns the commits between ref and the working head,
	// newest first.
	CommitsSince(ctx context.Context, ref string) ([]domain.Commit, error)

	// ChangesSince returns the files changed between ref and the working
	// tree. An unresolvable ref yields domain.ErrRefNotResolved.
	ChangesSince(ctx context.Context, ref string) ([]domain.ChangeRecord, error)
}
