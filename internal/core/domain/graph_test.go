package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddProject(t *testing.T) {
	g := domain.NewGraph()
	p := domain.Project{Path: domain.NewInternedString(":core"), Dir: "core"}

	if err := g.AddProject(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := g.AddProject(p); err == nil {
		t.Error("expected error when adding duplicate project, got nil")
	} else {
		// Verify error is of correct type
		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Errorf("expected *zerr.Error, got %T", err)
		}
		// Verify metadata
		meta := zErr.Metadata()
		if path, ok := meta["project_path"].(string); !ok || path != ":core" {
			t.Errorf("expected metadata project_path=:core, got %v", meta["project_path"])
		}
	}

	if g.Len() != 1 {
		t.Errorf("expected 1 project in graph, got %d", g.Len())
	}
}

func TestGraph_Walk_LexicographicOrder(t *testing.T) {
	g := domain.NewGraph()
	// Insert out of order; Walk must not depend on insertion order.
	for _, path := range []string{":web", ":app", ":core", ":"} {
		err := g.AddProject(domain.Project{Path: domain.NewInternedString(path)})
		if err != nil {
			t.Fatalf("failed to add %s: %v", path, err)
		}
	}

	walked := make([]string, 0, 4)
	for p := range g.Walk() {
		walked = append(walked, p.Path.String())
	}

	want := []string{":", ":app", ":core", ":web"}
	if !slices.Equal(walked, want) {
		t.Errorf("unexpected walk order: got %v, want %v", walked, want)
	}
}

func TestGraph_NonRootPaths(t *testing.T) {
	g := domain.NewGraph()
	for _, path := range []string{":", ":lib", ":app"} {
		if err := g.AddProject(domain.Project{Path: domain.NewInternedString(path)}); err != nil {
			t.Fatalf("failed to add %s: %v", path, err)
		}
	}

	paths := g.NonRootPaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 non-root paths, got %d", len(paths))
	}
	if paths[0].String() != ":app" || paths[1].String() != ":lib" {
		t.Errorf("unexpected non-root paths: %v", paths)
	}
}

func TestGraph_Invert(t *testing.T) {
	g := domain.NewGraph()
	lib := domain.NewInternedString(":lib")
	app := domain.NewInternedString(":app")
	web := domain.NewInternedString(":web")

	projects := []domain.Project{
		{Path: lib},
		// :ghost is not part of the graph; the edge must be dropped.
		{Path: app, Dependencies: []domain.InternedString{lib, domain.NewInternedString(":ghost")}},
		{Path: web, Dependencies: []domain.InternedString{lib}},
	}
	for _, p := range projects {
		if err := g.AddProject(p); err != nil {
			t.Fatalf("failed to add %s: %v", p.Path.String(), err)
		}
	}

	inv := g.Invert()
	dependants := inv[lib]
	if len(dependants) != 2 {
		t.Fatalf("expected 2 dependants of :lib, got %d", len(dependants))
	}
	if dependants[0] != app || dependants[1] != web {
		t.Errorf("unexpected dependants of :lib: %v", dependants)
	}
	if _, ok := inv[domain.NewInternedString(":ghost")]; ok {
		t.Error("expected edge to unknown project to be dropped")
	}
}
