package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/impact/internal/core/domain"
)

func TestAssembleReport(t *testing.T) {
	app := domain.NewInternedString(":app")
	lib := domain.NewInternedString(":lib")

	total := []domain.ChangeRecord{
		{Path: "lib/Util.kt", Status: domain.StatusModified},
		{Path: "README.md", Status: domain.StatusModified},
	}
	filtered := total[:1]

	impact := domain.ImpactReport{
		DirectImpact: map[domain.InternedString][]domain.ChangeRecord{
			lib: {filtered[0]},
		},
		TransitiveImpact: map[domain.InternedString][]domain.InternedString{
			app: {lib},
		},
		AffectedProjects: []domain.InternedString{app, lib},
	}
	state := domain.CacheState{
		Status:     domain.CacheHit,
		Source:     domain.SourceLocal,
		ConfigHash: "deadbeef00000000",
	}
	commits := []domain.Commit{
		{ShortHash: "abc1234", Author: "dev", Date: "2026-08-20", Subject: "tweak util"},
	}

	report := domain.AssembleReport("origin/main", state, commits, total, filtered, impact, []string{"test", "lint"})

	if report.SinceCommit != "origin/main" {
		t.Errorf("unexpected since commit: %q", report.SinceCommit)
	}
	if report.Cache.Status != domain.CacheHit || report.Cache.Source != domain.SourceLocal {
		t.Errorf("unexpected cache section: %+v", report.Cache)
	}
	if report.ConfigHash != "deadbeef00000000" {
		t.Errorf("unexpected config hash: %q", report.ConfigHash)
	}
	if report.Changes.Total != 2 || report.Changes.Filtered != 1 {
		t.Errorf("unexpected change counts: %+v", report.Changes)
	}
	if len(report.Commits) != 1 || report.Commits[0].ShortHash != "abc1234" {
		t.Errorf("unexpected commits: %v", report.Commits)
	}

	if !slices.Equal(report.AffectedProjects, []string{":app", ":lib"}) {
		t.Errorf("unexpected affected projects: %v", report.AffectedProjects)
	}
	if !slices.Equal(report.TransitiveImpact[":app"], []string{":lib"}) {
		t.Errorf("unexpected transitive impact: %v", report.TransitiveImpact)
	}
	if len(report.DirectImpact[":lib"]) != 1 {
		t.Errorf("unexpected direct impact: %v", report.DirectImpact)
	}

	// Cross product preserves project order then task order.
	wantTasks := []string{":app:test", ":app:lint", ":lib:test", ":lib:lint"}
	if !slices.Equal(report.Tasks, wantTasks) {
		t.Errorf("unexpected tasks: got %v, want %v", report.Tasks, wantTasks)
	}
	if report.TaskLine() != ":app:test :app:lint :lib:test :lib:lint" {
		t.Errorf("unexpected task line: %q", report.TaskLine())
	}
}

func TestAssembleReport_ExcludesRoot(t *testing.T) {
	impact := domain.ImpactReport{
		AffectedProjects: []domain.InternedString{
			domain.NewInternedString(":"),
			domain.NewInternedString(":core"),
		},
	}

	report := domain.AssembleReport("HEAD~1", domain.CacheState{}, nil, nil, nil, impact, []string{"test"})

	if !slices.Equal(report.AffectedProjects, []string{":core"}) {
		t.Errorf("expected root excluded, got %v", report.AffectedProjects)
	}
	if !slices.Equal(report.Tasks, []string{":core:test"}) {
		t.Errorf("unexpected tasks: %v", report.Tasks)
	}
}

func TestAssembleReport_GlobalTriggerTaskFanout(t *testing.T) {
	impact := domain.ImpactReport{
		GlobalTrigger: "gradle.properties",
		AffectedProjects: []domain.InternedString{
			domain.NewInternedString(":app"),
			domain.NewInternedString(":core"),
			domain.NewInternedString(":lib"),
		},
	}

	report := domain.AssembleReport("HEAD~3", domain.CacheState{}, nil, nil, nil, impact, []string{"test", "check"})

	if report.GlobalTrigger != "gradle.properties" {
		t.Errorf("unexpected global trigger: %q", report.GlobalTrigger)
	}
	if len(report.Tasks) != 6 {
		t.Errorf("expected 6 tasks (3 projects x 2 tasks), got %d: %v", len(report.Tasks), report.Tasks)
	}
}

func TestAssembleReport_NoAffectedProjects(t *testing.T) {
	report := domain.AssembleReport("HEAD~1", domain.CacheState{}, nil, nil, nil, domain.ImpactReport{}, []string{"test"})

	if len(report.Tasks) != 0 {
		t.Errorf("expected no tasks, got %v", report.Tasks)
	}
	if report.TaskLine() != "" {
		t.Errorf("expected empty task line, got %q", report.TaskLine())
	}
}
