package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/impact/internal/adapters/fs"
)

var configExtensions = []string{".gradle", ".gradle.kts", ".toml", ".properties"}

func newHasher(skipDirs ...string) *fs.ConfigHasher {
	return fs.NewConfigHasher(fs.NewWalker(), configExtensions, skipDirs)
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestHashConfig_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "plugins { id 'java' }")
	writeFile(t, root, "gradle/libs.versions.toml", "[versions]\nkotlin = \"2.0.0\"")
	writeFile(t, root, "gradle.properties", "org.gradle.caching=true")

	h := newHasher()
	first, err := h.HashConfig(root)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := h.HashConfig(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHashConfig_ContentChangesHash(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "plugins { id 'java' }")

	h := newHasher()
	before, err := h.HashConfig(root)
	require.NoError(t, err)

	writeFile(t, root, "build.gradle", "plugins { id 'java-library' }")
	after, err := h.HashConfig(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHashConfig_IgnoresNonConfigFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "settings.gradle", "rootProject.name = 'demo'")

	h := newHasher()
	before, err := h.HashConfig(root)
	require.NoError(t, err)

	// Source files do not participate in the config hash.
	writeFile(t, root, "app/src/Main.kt", "fun main() {}")
	after, err := h.HashConfig(root)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestHashConfig_SkipsConfiguredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "settings.gradle", "rootProject.name = 'demo'")

	h := newHasher("build", ".gradle")
	before, err := h.HashConfig(root)
	require.NoError(t, err)

	writeFile(t, root, "build/generated.properties", "tmp=1")
	writeFile(t, root, ".gradle/caches.properties", "tmp=2")
	after, err := h.HashConfig(root)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestHashConfig_RenameChangesHash(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.properties", "x=1")

	h := newHasher()
	before, err := h.HashConfig(root)
	require.NoError(t, err)

	// Same content under a different relative path must hash differently.
	require.NoError(t, os.Rename(filepath.Join(root, "a.properties"), filepath.Join(root, "b.properties")))
	after, err := h.HashConfig(root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}
