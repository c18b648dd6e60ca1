package fs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/impact/internal/adapters/fs"
	"go.trai.ch/impact/internal/core/domain"
)

func newStore(t *testing.T) *fs.SnapshotStore {
	t.Helper()
	dir := t.TempDir()
	return fs.NewSnapshotStore(
		filepath.Join(dir, "project-graph.json"),
		filepath.Join(dir, ".impact-hash"),
	)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := newStore(t)
	assert.False(t, store.SnapshotExists())

	data := []byte(`[{"path":":app","dir":"app","dependencies":[":lib"]}]`)
	require.NoError(t, store.WriteSnapshot(data))

	assert.True(t, store.SnapshotExists())
	got, err := store.ReadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSnapshotStore_ReadMissing(t *testing.T) {
	store := newStore(t)

	_, err := store.ReadSnapshot()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSnapshotMissing))
}

func TestSnapshotStore_Marker(t *testing.T) {
	store := newStore(t)

	// No marker yet reads as empty, not as an error.
	marker, err := store.ReadMarker()
	require.NoError(t, err)
	assert.Empty(t, marker)

	require.NoError(t, store.WriteMarker("cafebabe12345678"))
	marker, err = store.ReadMarker()
	require.NoError(t, err)
	assert.Equal(t, "cafebabe12345678", marker)
}

func TestSnapshotStore_LoadGraph(t *testing.T) {
	store := newStore(t)
	doc := `[
		{"path":":","dir":"","dependencies":[]},
		{"path":":app","dir":"app","dependencies":[":lib"]},
		{"path":":lib","dir":"lib","dependencies":[]}
	]`
	require.NoError(t, store.WriteSnapshot([]byte(doc)))

	g, err := store.LoadGraph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	app, ok := g.Project(domain.NewInternedString(":app"))
	require.True(t, ok)
	assert.Equal(t, "app", app.Dir)
	require.Len(t, app.Dependencies, 1)
	assert.Equal(t, ":lib", app.Dependencies[0].String())
}

func TestSnapshotStore_LoadGraph_Malformed(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.WriteSnapshot([]byte(`{"not":"an array"`)))

	_, err := store.LoadGraph()
	assert.Error(t, err)
}

func TestSnapshotStore_LoadGraph_DuplicateProject(t *testing.T) {
	store := newStore(t)
	doc := `[{"path":":app","dir":"app"},{"path":":app","dir":"app2"}]`
	require.NoError(t, store.WriteSnapshot([]byte(doc)))

	_, err := store.LoadGraph()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProjectAlreadyExists))
}
