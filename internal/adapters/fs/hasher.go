package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ConfigHasher = (*ConfigHasher)(nil)

// ConfigHasher computes the content hash over the build-configuration file
// set using XXHash.
type ConfigHasher struct {
	walker     *Walker
	extensions []string
	skipDirs   []string
}

// NewConfigHasher creates a ConfigHasher recognizing the given build-config
// extensions and skipping the given directories during the walk.
func NewConfigHasher(walker *Walker, extensions, skipDirs []string) *ConfigHasher {
	return &ConfigHasher{
		walker:     walker,
		extensions: extensions,
		skipDirs:   skipDirs,
	}
}

// HashConfig returns a hex digest over the sorted set of build-configuration
// files under root. Per-file digests are computed concurrently; the combined
// digest folds them in sorted-path order, so the result is independent of
// both filesystem iteration order and goroutine scheduling.
func (h *ConfigHasher) HashConfig(root string) (string, error) {
	paths := make([]string, 0, 64)
	for path := range h.walker.WalkFiles(root, h.extensions, h.skipDirs) {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fileHashes := make(map[string]uint64, len(paths))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, path := range paths {
		g.Go(func() error {
			sum, err := hashFileContent(path)
			if err != nil {
				if os.IsNotExist(err) {
					// File disappeared between walk and read: treat as absent.
					return nil
				}
				return err
			}
			mu.Lock()
			fileHashes[path] = sum
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	digest := xxhash.New()
	for _, path := range paths {
		sum, ok := fileHashes[path]
		if !ok {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		_, _ = digest.WriteString(filepath.ToSlash(rel))
		_, _ = digest.Write([]byte{0})
		_ = binary.Write(digest, binary.LittleEndian, sum)
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// hashFileContent computes the XXHash of a file's content.
func hashFileContent(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from our own walk
	if err != nil {
		if os.IsNotExist(err) {
			return 0, err
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to open config file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash config file"), "path", path)
	}
	return digest.Sum64(), nil
}
