// Package gradle implements the graph-export adapter that shells out to the
// Gradle build tool.
package gradle

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphExporter = (*Exporter)(nil)

// Exporter regenerates the graph snapshot by running the export task.
type Exporter struct {
	dir        string
	wrapper    string
	fallback   string
	exportTask string
	logger     ports.Logger
}

// NewExporter creates an Exporter for the checkout at dir. The wrapper script
// is preferred when present; otherwise the fallback binary from PATH is used.
func NewExporter(dir, wrapper, fallback, exportTask string, logger ports.Logger) *Exporter {
	return &Exporter{
		dir:        dir,
		wrapper:    wrapper,
		fallback:   fallback,
		exportTask: exportTask,
		logger:     logger,
	}
}

// Export runs the export task with optional pass-through flags. Any failure
// maps to domain.ErrGraphExportFailed: the run cannot proceed without a graph.
func (e *Exporter) Export(ctx context.Context, extraArgs []string) error {
	args := append([]string{e.exportTask, "--quiet"}, extraArgs...)

	cmd := exec.CommandContext(ctx, e.command(), args...) //nolint:gosec // command comes from settings
	cmd.Dir = e.dir
	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		fatal := zerr.With(domain.ErrGraphExportFailed, "exit_code", exitCode)
		return zerr.With(fatal, "cause", err.Error())
	}
	return nil
}

// command prefers the wrapper script when it exists in the checkout.
// The returned relative path is evaluated against cmd.Dir by os/exec.
func (e *Exporter) command() string {
	if _, err := os.Stat(filepath.Join(e.dir, e.wrapper)); err == nil {
		return e.wrapper
	}
	return e.fallback
}

// logWriter forwards subprocess output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
