// Package app implements the application layer for impact.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/impact/internal/engine/cache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options carries the resolution rules resolved from settings.
type Options struct {
	IgnorePatterns []string
	GlobalTriggers []string
	DefaultTasks   []string
}

// RunOptions carries the per-invocation CLI arguments.
type RunOptions struct {
	// SinceRef is the reference commit changes are computed against.
	SinceRef string

	// Tasks are the task names expanded per affected project. Empty falls
	// back to Options.DefaultTasks.
	Tasks []string

	// JSONPath and HTMLPath are optional report output paths.
	JSONPath string
	HTMLPath string

	// GradleArgs are passed through to the graph export invocation.
	GradleArgs []string
}

// App wires the resolution pipeline: freshness check, change query,
// classification, impact resolution, report assembly and output.
type App struct {
	coordinator *cache.Coordinator
	scm         ports.SourceControl
	store       ports.SnapshotStore
	renderer    ports.ReportRenderer
	writer      ports.ReportWriter
	logger      ports.Logger
	opts        Options

	out io.Writer
}

// New creates a new App instance.
func New(
	coordinator *cache.Coordinator,
	scm ports.SourceControl,
	store ports.SnapshotStore,
	renderer ports.ReportRenderer,
	writer ports.ReportWriter,
	logger ports.Logger,
	opts Options,
) *App {
	return &App{
		coordinator: coordinator,
		scm:         scm,
		store:       store,
		renderer:    renderer,
		writer:      writer,
		logger:      logger,
		opts:        opts,
		out:         os.Stdout,
	}
}

// WithOutput redirects the task-list output. Used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run executes one resolution pass and prints the resulting task list.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.SinceRef == "" {
		return zerr.New("reference commit is required")
	}
	tasks := opts.Tasks
	if len(tasks) == 0 {
		tasks = a.opts.DefaultTasks
	}

	// The freshness check always precedes graph loading.
	state, err := a.coordinator.EnsureFresh(ctx, opts.GradleArgs)
	if err != nil {
		return err
	}

	// The two git reads are independent; fetch them concurrently.
	var (
		commits []domain.Commit
		changes []domain.ChangeRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		commits, err = a.scm.CommitsSince(gctx, opts.SinceRef)
		return err
	})
	g.Go(func() error {
		var err error
		changes, err = a.scm.ChangesSince(gctx, opts.SinceRef)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	filtered := domain.FilterChanges(changes, a.opts.IgnorePatterns)

	var impact domain.ImpactReport
	if len(filtered) > 0 {
		impact = a.resolve(filtered)
	}

	report := domain.AssembleReport(opts.SinceRef, state, commits, changes, filtered, impact, tasks)

	if err := a.writeOutputs(report, opts); err != nil {
		return err
	}

	if len(report.Tasks) > 0 {
		_, _ = fmt.Fprintln(a.out, report.TaskLine())
	}
	return nil
}

// resolve loads the graph and computes the affected set. A missing or
// unreadable snapshot degrades to an empty impact rather than failing the
// run: CI proceeds with nothing to do instead of blocking.
func (a *App) resolve(filtered []domain.ChangeRecord) domain.ImpactReport {
	graph, err := a.store.LoadGraph()
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotMissing) {
			a.logger.Warn("graph snapshot missing, reporting no affected projects")
		} else {
			a.logger.Warn(fmt.Sprintf("graph snapshot unreadable, reporting no affected projects: %v", err))
		}
		return domain.ImpactReport{}
	}

	return domain.Resolve(graph, filtered, domain.ResolveOptions{
		GlobalTriggers: a.opts.GlobalTriggers,
	})
}

func (a *App) writeOutputs(report domain.Report, opts RunOptions) error {
	if opts.JSONPath != "" {
		if err := a.writer.Write(report, opts.JSONPath); err != nil {
			return err
		}
	}
	if opts.HTMLPath != "" {
		page, err := a.renderer.Render(report)
		if err != nil {
			return err
		}
		//nolint:gosec // path is provided by user
		if err := os.WriteFile(opts.HTMLPath, page, 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write html report"), "path", opts.HTMLPath)
		}
	}
	return nil
}
