package domain

import (
	"slices"
	"strings"
)

// ImpactReport is the output of one resolution run.
type ImpactReport struct {
	// GlobalTrigger is the changed path that matched a global-trigger prefix,
	// if any. When set, every non-root project is affected and the direct and
	// transitive maps are left empty.
	GlobalTrigger string

	// DirectImpact maps an affected project path to the changes that landed
	// inside its directory.
	DirectImpact map[InternedString][]ChangeRecord

	// TransitiveImpact maps an affected project path to the upstream projects
	// whose change caused its inclusion. A project can have several
	// contributing upstreams.
	TransitiveImpact map[InternedString][]InternedString

	// AffectedProjects is the union of direct and transitive impact, sorted
	// lexicographically, with the root sentinel removed.
	AffectedProjects []InternedString
}

// ResolveOptions carries the resolution rules that are configuration rather
// than graph data.
type ResolveOptions struct {
	// GlobalTriggers are path prefixes whose modification affects every
	// project (shared build configuration such as a settings file or a
	// version catalog).
	GlobalTriggers []string
}

// Resolve computes the affected-project set for the given changes.
//
// Rules apply in order, first match wins: a global-trigger change short-circuits
// to "everything affected"; otherwise each change is mapped to its owning
// project by longest directory prefix, and the dependants index is walked
// breadth-first to close over downstream projects, recording provenance for
// every edge that pulled a project in.
func Resolve(g *Graph, changes []ChangeRecord, opts ResolveOptions) ImpactReport {
	if trigger := findGlobalTrigger(changes, opts.GlobalTriggers); trigger != "" {
		return ImpactReport{
			GlobalTrigger:    trigger,
			DirectImpact:     map[InternedString][]ChangeRecord{},
			TransitiveImpact: map[InternedString][]InternedString{},
			AffectedProjects: g.NonRootPaths(),
		}
	}

	direct := mapDirectImpact(g, changes)

	affected := make(map[InternedString]bool, len(direct))
	frontier := make([]InternedString, 0, len(direct))
	for path := range direct {
		affected[path] = true
	}
	// Seed in sorted order so provenance lists come out deterministic.
	for _, path := range sortedPaths(direct) {
		frontier = append(frontier, path)
	}

	dependants := g.Invert()
	transitive := make(map[InternedString][]InternedString)
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, dependant := range dependants[current] {
			if !affected[dependant] {
				affected[dependant] = true
				frontier = append(frontier, dependant)
			}
			// A project already in the set (even directly affected) still
			// gains the new cause, but is not enqueued again.
			if !slices.Contains(transitive[dependant], current) {
				transitive[dependant] = append(transitive[dependant], current)
			}
		}
	}

	return ImpactReport{
		DirectImpact:     direct,
		TransitiveImpact: transitive,
		AffectedProjects: affectedPaths(affected),
	}
}

func findGlobalTrigger(changes []ChangeRecord, triggers []string) string {
	for _, c := range changes {
		for _, trigger := range triggers {
			if strings.HasPrefix(c.Path, trigger) {
				return c.Path
			}
		}
	}
	return ""
}

// mapDirectImpact assigns each change to the project with the longest
// directory prefix owning it. Prefixes match on path-segment boundaries, so
// "app" never claims "application/Main.kt". Projects with an empty or root
// directory never own files. Walk order is lexicographic, which doubles as a
// deterministic tie-break for equal-length directories.
func mapDirectImpact(g *Graph, changes []ChangeRecord) map[InternedString][]ChangeRecord {
	direct := make(map[InternedString][]ChangeRecord)
	for _, c := range changes {
		var (
			best    InternedString
			bestLen = -1
			found   bool
		)
		for p := range g.Walk() {
			dir := strings.TrimSuffix(p.Dir, "/")
			if dir == "" || dir == "." {
				continue
			}
			if c.Path != dir && !strings.HasPrefix(c.Path, dir+"/") {
				continue
			}
			if len(dir) > bestLen {
				best = p.Path
				bestLen = len(dir)
				found = true
			}
		}
		if found {
			direct[best] = append(direct[best], c)
		}
	}
	return direct
}

func sortedPaths(direct map[InternedString][]ChangeRecord) []InternedString {
	paths := make([]InternedString, 0, len(direct))
	for p := range direct {
		paths = append(paths, p)
	}
	slices.SortFunc(paths, comparePaths)
	return paths
}

func affectedPaths(affected map[InternedString]bool) []InternedString {
	paths := make([]InternedString, 0, len(affected))
	for p := range affected {
		if p.String() == RootProjectPath {
			continue
		}
		paths = append(paths, p)
	}
	slices.SortFunc(paths, comparePaths)
	return paths
}

func comparePaths(a, b InternedString) int {
	return strings.Compare(a.String(), b.String())
}
