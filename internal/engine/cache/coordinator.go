// Package cache implements the snapshot freshness coordinator: local hash
// check, remote fetch, full regeneration, in that order.
package cache

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

// Coordinator decides whether the local graph snapshot can be reused and
// repairs it when it cannot. It owns all side effects on the two persisted
// artifacts (snapshot, hash marker).
type Coordinator struct {
	hasher   ports.ConfigHasher
	store    ports.SnapshotStore
	remote   ports.RemoteCache
	exporter ports.GraphExporter
	logger   ports.Logger
	root     string
}

// New creates a Coordinator rooted at the given checkout directory.
func New(
	hasher ports.ConfigHasher,
	store ports.SnapshotStore,
	remote ports.RemoteCache,
	exporter ports.GraphExporter,
	logger ports.Logger,
	root string,
) *Coordinator {
	return &Coordinator{
		hasher:   hasher,
		store:    store,
		remote:   remote,
		exporter: exporter,
		logger:   logger,
		root:     root,
	}
}

// EnsureFresh guarantees that the on-disk snapshot matches the current
// build-configuration hash, falling through local hit, remote hit, and full
// regeneration. Only a failed regeneration is fatal; remote-tier failures
// degrade to the next tier. No side effect occurs on a local hit.
func (c *Coordinator) EnsureFresh(ctx context.Context, exportArgs []string) (domain.CacheState, error) {
	hash, err := c.hasher.HashConfig(c.root)
	if err != nil {
		return domain.CacheState{}, zerr.Wrap(err, "failed to hash build configuration")
	}

	if c.localHit(hash) {
		return domain.CacheState{
			Status:     domain.CacheHit,
			Source:     domain.SourceLocal,
			ConfigHash: hash,
		}, nil
	}

	if c.tryRemote(ctx, hash) {
		if err := c.store.WriteMarker(hash); err != nil {
			return domain.CacheState{}, err
		}
		return domain.CacheState{
			Status:     domain.CacheHit,
			Source:     domain.SourceRemote,
			ConfigHash: hash,
		}, nil
	}

	c.logger.Info("cache miss or config changed, refreshing project graph")
	if err := c.exporter.Export(ctx, exportArgs); err != nil {
		return domain.CacheState{}, err
	}

	c.uploadBestEffort(ctx, hash)

	if err := c.store.WriteMarker(hash); err != nil {
		return domain.CacheState{}, err
	}
	return domain.CacheState{
		Status:     domain.CacheMiss,
		Source:     domain.SourceNone,
		ConfigHash: hash,
	}, nil
}

// localHit reports whether the persisted marker matches the current hash and
// a snapshot is actually present. A marker read error counts as stale, not
// as a failure.
func (c *Coordinator) localHit(hash string) bool {
	if !c.store.SnapshotExists() {
		return false
	}
	marker, err := c.store.ReadMarker()
	if err != nil {
		c.logger.Warn(fmt.Sprintf("ignoring unreadable hash marker: %v", err))
		return false
	}
	return marker != "" && marker == hash
}

// tryRemote fetches the snapshot keyed by hash and installs it locally.
// Every failure path returns false so the caller regenerates instead.
func (c *Coordinator) tryRemote(ctx context.Context, hash string) bool {
	if !c.remote.Enabled() {
		return false
	}

	data, err := c.remote.Fetch(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteCacheMiss) {
			return false
		}
		c.logger.Warn(fmt.Sprintf("remote cache fetch failed, regenerating: %v", err))
		return false
	}

	if err := c.store.WriteSnapshot(data); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to install remote snapshot, regenerating: %v", err))
		return false
	}

	c.logger.Info("remote cache hit for " + hash)
	return true
}

// uploadBestEffort pushes the freshly generated snapshot to the remote cache.
// Failures are logged and never block the run.
func (c *Coordinator) uploadBestEffort(ctx context.Context, hash string) {
	if !c.remote.Enabled() {
		return
	}
	data, err := c.store.ReadSnapshot()
	if err != nil {
		c.logger.Warn(fmt.Sprintf("skipping cache upload, snapshot unreadable: %v", err))
		return
	}
	if err := c.remote.Store(ctx, hash, data); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to upload snapshot to remote cache: %v", err))
	}
}
