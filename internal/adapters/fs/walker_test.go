package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/impact/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "")
	writeFile(t, root, "app/build.gradle.kts", "")
	writeFile(t, root, "app/src/Main.kt", "")
	writeFile(t, root, ".git/config.properties", "")
	writeFile(t, root, "build/out.properties", "")

	w := fs.NewWalker()
	var got []string
	for path := range w.WalkFiles(root, []string{".gradle", ".gradle.kts", ".properties"}, []string{"build"}) {
		rel, err := filepath.Rel(root, path)
		assert.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{"build.gradle", "app/build.gradle.kts"}, got)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	w := fs.NewWalker()
	count := 0
	for range w.WalkFiles(filepath.Join(t.TempDir(), "nope"), []string{".gradle"}, nil) {
		count++
	}
	assert.Zero(t, count)
}
