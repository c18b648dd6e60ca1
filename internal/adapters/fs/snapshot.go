package fs

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore reads and writes the graph snapshot and the hash marker that
// sits beside it. Both files live in the checkout; concurrent invocations
// against the same checkout are not coordinated (single-writer by design).
type SnapshotStore struct {
	snapshotPath string
	markerPath   string
}

// NewSnapshotStore creates a SnapshotStore for the given file paths.
func NewSnapshotStore(snapshotPath, markerPath string) *SnapshotStore {
	return &SnapshotStore{
		snapshotPath: filepath.Clean(snapshotPath),
		markerPath:   filepath.Clean(markerPath),
	}
}

// projectDTO mirrors one entry of the serialized snapshot document.
type projectDTO struct {
	Path         string   `json:"path"`
	Dir          string   `json:"dir"`
	Dependencies []string `json:"dependencies"`
}

// LoadGraph parses the snapshot into a domain.Graph.
func (s *SnapshotStore) LoadGraph() (*domain.Graph, error) {
	data, err := s.ReadSnapshot()
	if err != nil {
		return nil, err
	}

	var dtos []projectDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse graph snapshot"), "path", s.snapshotPath)
	}

	g := domain.NewGraph()
	for _, dto := range dtos {
		p := domain.Project{
			Path:         domain.NewInternedString(dto.Path),
			Dir:          dto.Dir,
			Dependencies: internPaths(dto.Dependencies),
		}
		if err := g.AddProject(p); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ReadSnapshot returns the raw snapshot bytes.
func (s *SnapshotStore) ReadSnapshot() ([]byte, error) {
	data, err := os.ReadFile(s.snapshotPath) //nolint:gosec // path is cleaned and configured by trusted caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrSnapshotMissing, "path", s.snapshotPath)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read graph snapshot"), "path", s.snapshotPath)
	}
	return data, nil
}

// WriteSnapshot replaces the snapshot with the given bytes.
func (s *SnapshotStore) WriteSnapshot(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create snapshot directory")
	}
	//nolint:gosec // path is cleaned and configured by trusted caller
	if err := os.WriteFile(s.snapshotPath, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write graph snapshot"), "path", s.snapshotPath)
	}
	return nil
}

// SnapshotExists reports whether a snapshot file is present.
func (s *SnapshotStore) SnapshotExists() bool {
	_, err := os.Stat(s.snapshotPath)
	return err == nil
}

// ReadMarker returns the config hash persisted by the previous run, or ""
// when no marker exists.
func (s *SnapshotStore) ReadMarker() (string, error) {
	data, err := os.ReadFile(s.markerPath) //nolint:gosec // path is cleaned and configured by trusted caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read hash marker"), "path", s.markerPath)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteMarker persists the config hash for the next run.
func (s *SnapshotStore) WriteMarker(configHash string) error {
	//nolint:gosec // path is cleaned and configured by trusted caller
	if err := os.WriteFile(s.markerPath, []byte(configHash+"\n"), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write hash marker"), "path", s.markerPath)
	}
	return nil
}

func internPaths(paths []string) []domain.InternedString {
	if len(paths) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(paths))
	for i, p := range paths {
		res[i] = domain.NewInternedString(p)
	}
	return res
}
