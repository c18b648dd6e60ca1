package domain

// CacheStatus describes whether the graph snapshot was reused or rebuilt.
type CacheStatus string

const (
	// CacheHit indicates the snapshot was reused without regeneration.
	CacheHit CacheStatus = "hit"
	// CacheMiss indicates the snapshot had to be regenerated.
	CacheMiss CacheStatus = "miss"
)

// CacheSource describes which tier satisfied the snapshot lookup.
type CacheSource string

const (
	// SourceLocal indicates the on-disk snapshot matched the current config hash.
	SourceLocal CacheSource = "local"
	// SourceRemote indicates the snapshot was fetched from the remote cache.
	SourceRemote CacheSource = "remote"
	// SourceNone indicates no cache tier applied and the snapshot was rebuilt.
	SourceNone CacheSource = "none"
)

// CacheState records the outcome of the freshness check for one invocation.
// It is computed fresh every run; only the hash marker persists between runs.
type CacheState struct {
	Status     CacheStatus
	Source     CacheSource
	ConfigHash string
}
