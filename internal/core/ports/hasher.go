package ports

// ConfigHasher computes the content hash over the build-configuration file
// set, used to detect configuration drift without semantic parsing.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ConfigHasher interface {
	// HashConfig returns a deterministic hex digest over the sorted set of
	// build-configuration files under root. Files that vanish mid-walk are
	// skipped, not errors.
	HashConfig(root string) (string, error)
}
