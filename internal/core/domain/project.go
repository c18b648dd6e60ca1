// Package domain contains the core domain model for change-impact resolution:
// the project dependency graph, change classification, and the affected-set
// algorithm.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// RootProjectPath is the sentinel path of the root/aggregator project.
// It is never reported as affected and never expanded into task invocations.
const RootProjectPath = ":"

// Project is a node in the dependency graph: a buildable module identified by
// a logical path (e.g. ":lib:core") and the repository-relative directory its
// sources live under.
type Project struct {
	Path         InternedString
	Dir          string
	Dependencies []InternedString
}

// IsRoot reports whether the project is the root sentinel.
func (p Project) IsRoot() bool {
	return p.Path.String() == RootProjectPath
}

// Graph is the project dependency graph for one resolution run.
// It is built once from a snapshot and never mutated afterwards.
// Dependency edges may reference paths absent from the graph (ignored) and
// may form cycles (tolerated; traversal is monotonic).
type Graph struct {
	projects map[InternedString]Project
	order    []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		projects: make(map[InternedString]Project),
	}
}

// AddProject adds a project to the graph.
// It returns an error if a project with the same path already exists.
func (g *Graph) AddProject(p Project) error {
	if _, exists := g.projects[p.Path]; exists {
		return zerr.With(ErrProjectAlreadyExists, "project_path", p.Path.String())
	}
	g.projects[p.Path] = p
	g.order = append(g.order, p.Path)
	return nil
}

// Len returns the number of projects in the graph.
func (g *Graph) Len() int {
	return len(g.projects)
}

// Project returns the project with the given path.
func (g *Graph) Project(path InternedString) (Project, bool) {
	p, ok := g.projects[path]
	return p, ok
}

// Walk returns an iterator over all projects in lexicographic path order.
// The fixed order makes direct-mapping tie-breaks deterministic across
// snapshot regenerations.
func (g *Graph) Walk() iter.Seq[Project] {
	sorted := make([]InternedString, len(g.order))
	copy(sorted, g.order)
	slices.SortFunc(sorted, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return func(yield func(Project) bool) {
		for _, path := range sorted {
			if !yield(g.projects[path]) {
				return
			}
		}
	}
}

// NonRootPaths returns every project path except the root sentinel, sorted
// lexicographically.
func (g *Graph) NonRootPaths() []InternedString {
	paths := make([]InternedString, 0, len(g.projects))
	for p := range g.Walk() {
		if p.IsRoot() {
			continue
		}
		paths = append(paths, p.Path)
	}
	return paths
}

// Invert builds the dependants index: for each path, the set of projects that
// declare it as a dependency. Edges pointing outside the graph are dropped.
func (g *Graph) Invert() InvertedGraph {
	inv := make(InvertedGraph, len(g.projects))
	for p := range g.Walk() {
		for _, dep := range p.Dependencies {
			if _, known := g.projects[dep]; !known {
				continue
			}
			inv[dep] = append(inv[dep], p.Path)
		}
	}
	return inv
}

// InvertedGraph maps a project path to the projects that depend on it.
// Dependant lists preserve the lexicographic order of Walk.
type InvertedGraph map[InternedString][]InternedString
