package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectAlreadyExists is returned when a snapshot declares the same
	// project path twice.
	ErrProjectAlreadyExists = zerr.New("project already exists")

	// ErrGraphExportFailed is returned when the build tool fails to regenerate
	// the graph snapshot. This is fatal: no valid graph can be obtained.
	ErrGraphExportFailed = zerr.New("graph export failed")

	// ErrRefNotResolved is returned when source control cannot resolve the
	// reference commit. This is fatal: no change list is derivable.
	ErrRefNotResolved = zerr.New("reference commit not resolved")

	// ErrRemoteCacheMiss is returned when the remote cache has no object for
	// the requested hash, or when no remote cache is configured.
	ErrRemoteCacheMiss = zerr.New("remote cache miss")

	// ErrSnapshotMissing is returned when the local graph snapshot does not
	// exist. Resolution degrades to an empty affected set.
	ErrSnapshotMissing = zerr.New("graph snapshot missing")
)
