package ports

import "go.trai.ch/impact/internal/core/domain"

// SnapshotStore owns the two persisted artifacts on the local filesystem:
// the graph snapshot and the hash marker beside it.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotStore interface {
	// LoadGraph parses the snapshot into a Graph.
	// A missing snapshot yields domain.ErrSnapshotMissing.
	LoadGraph() (*domain.Graph, error)

	// ReadSnapshot returns the raw snapshot bytes (for remote upload).
	ReadSnapshot() ([]byte, error)

	// WriteSnapshot replaces the snapshot with the given bytes.
	WriteSnapshot(data []byte) error

	// SnapshotExists reports whether a snapshot is present.
	SnapshotExists() bool

	// ReadMarker returns the persisted config hash from the previous run,
	// or "" if no marker exists.
	ReadMarker() (string, error)

	// WriteMarker persists the config hash for the next run's freshness check.
	WriteMarker(configHash string) error
}
