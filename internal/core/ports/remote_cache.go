package ports

import "context"

// RemoteCache stores graph snapshots in a remote object store, keyed by the
// build-configuration content hash. All failures are degradable: callers fall
// through to the next tier or skip the upload.
//
//go:generate go run go.uber.org/mock/mockgen -source=remote_cache.go -destination=mocks/mock_remote_cache.go -package=mocks
type RemoteCache interface {
	// Fetch returns the snapshot bytes for the given config hash.
	// A missing key (or an unconfigured remote) yields domain.ErrRemoteCacheMiss.
	Fetch(ctx context.Context, configHash string) ([]byte, error)

	// Store uploads the snapshot bytes under the given config hash.
	Store(ctx context.Context, configHash string, snapshot []byte) error

	// Enabled reports whether a remote endpoint is configured.
	Enabled() bool
}
