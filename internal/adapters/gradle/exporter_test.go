package gradle_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/impact/internal/adapters/gradle"
	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0o700)) //nolint:gosec // test script must be executable
}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func TestExport_UsesWrapper(t *testing.T) {
	dir := t.TempDir()
	// The wrapper records its arguments so we can assert the invocation.
	writeScript(t, dir, "gradlew", `echo "$@" > invoked.txt`)

	e := gradle.NewExporter(dir, "./gradlew", "definitely-not-on-path", "exportProjectGraph", newLogger(t))
	require.NoError(t, e.Export(context.Background(), []string{"--offline"}))

	recorded, err := os.ReadFile(filepath.Join(dir, "invoked.txt"))
	require.NoError(t, err)
	assert.Equal(t, "exportProjectGraph --quiet --offline\n", string(recorded))
}

func TestExport_FallbackWhenWrapperMissing(t *testing.T) {
	dir := t.TempDir()
	binDir := t.TempDir()
	writeScript(t, binDir, "fake-gradle", "exit 0")

	e := gradle.NewExporter(dir, "./gradlew", filepath.Join(binDir, "fake-gradle"), "exportProjectGraph", newLogger(t))
	assert.NoError(t, e.Export(context.Background(), nil))
}

func TestExport_FailureMapsToSentinel(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "gradlew", "echo boom >&2; exit 3")

	e := gradle.NewExporter(dir, "./gradlew", "gradle", "exportProjectGraph", newLogger(t))
	err := e.Export(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGraphExportFailed))
}

func TestExport_MissingCommand(t *testing.T) {
	dir := t.TempDir()

	e := gradle.NewExporter(dir, "./gradlew", "definitely-not-on-path", "exportProjectGraph", newLogger(t))
	err := e.Export(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGraphExportFailed))
}
