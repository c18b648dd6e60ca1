// Package fs provides file system adapters: the build-config walker and
// hasher, and the local snapshot store.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker yields build-configuration files under a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root whose name ends in one of the given
// extensions, skipping version-control and build-output directories.
// Walk errors below the root are swallowed: a vanishing subtree during a CI
// run must not abort hashing.
func (w *Walker) WalkFiles(root string, extensions, skipDirs []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // tolerate unreadable entries
			}

			if d.IsDir() {
				if w.shouldSkipDir(d.Name(), skipDirs) && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if !hasAnySuffix(d.Name(), extensions) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkipDir reports whether a directory is excluded from the walk.
// .git and .jj are always excluded.
func (w *Walker) shouldSkipDir(name string, skipDirs []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	for _, skip := range skipDirs {
		if name == skip {
			return true
		}
	}
	return false
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}
