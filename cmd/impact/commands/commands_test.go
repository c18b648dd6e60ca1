package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/impact/cmd/impact/commands"
	"go.trai.ch/impact/internal/app"
	"go.trai.ch/impact/internal/core/ports/mocks"
	"go.trai.ch/impact/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T) (*commands.CLI, *mocks.MockSourceControl, *fixtureMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixtureMocks{
		hasher:   mocks.NewMockConfigHasher(ctrl),
		store:    mocks.NewMockSnapshotStore(ctrl),
		remote:   mocks.NewMockRemoteCache(ctrl),
		exporter: mocks.NewMockGraphExporter(ctrl),
		renderer: mocks.NewMockReportRenderer(ctrl),
		writer:   mocks.NewMockReportWriter(ctrl),
	}
	scm := mocks.NewMockSourceControl(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	coordinator := cache.New(f.hasher, f.store, f.remote, f.exporter, logger, ".")
	a := app.New(coordinator, scm, f.store, f.renderer, f.writer, logger, app.Options{
		DefaultTasks: []string{"test"},
	})

	return commands.New(a), scm, f
}

type fixtureMocks struct {
	hasher   *mocks.MockConfigHasher
	store    *mocks.MockSnapshotStore
	remote   *mocks.MockRemoteCache
	exporter *mocks.MockGraphExporter
	renderer *mocks.MockReportRenderer
	writer   *mocks.MockReportWriter
}

func TestRun_Success(t *testing.T) {
	cli, scm, f := newCLI(t)

	// Local cache hit, no changes since the reference.
	f.hasher.EXPECT().HashConfig(".").Return("cafebabe12345678", nil)
	f.store.EXPECT().SnapshotExists().Return(true)
	f.store.EXPECT().ReadMarker().Return("cafebabe12345678", nil)
	scm.EXPECT().CommitsSince(gomock.Any(), "origin/main").Return(nil, nil)
	scm.EXPECT().ChangesSince(gomock.Any(), "origin/main").Return(nil, nil)

	cli.SetArgs([]string{"run", "origin/main"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_MissingRef(t *testing.T) {
	cli, _, _ := newCLI(t)

	// cobra rejects the call before the app runs.
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	if err == nil {
		t.Error("Expected error for missing reference argument, got nil")
	}
}

func TestRoot_Help(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	cli, _, _ := newCLI(t)

	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	if err != nil {
		t.Errorf("Expected no error for version, got: %v", err)
	}
}
