package domain

import (
	"slices"
	"strings"
)

// Report is the structured result of one run, consumed by the report
// renderers and the machine-readable output.
type Report struct {
	SinceCommit      string                    `json:"sinceCommit"`
	Cache            ReportCache               `json:"cache"`
	ConfigHash       string                    `json:"configHash"`
	Changes          ChangeCounts              `json:"changes"`
	Commits          []Commit                  `json:"commits"`
	FileDetails      []ChangeRecord            `json:"fileDetails"`
	GlobalTrigger    string                    `json:"globalTrigger,omitempty"`
	DirectImpact     map[string][]ChangeRecord `json:"directImpact"`
	TransitiveImpact map[string][]string       `json:"transitiveImpact"`
	AffectedProjects []string                  `json:"affectedProjects"`
	Tasks            []string                  `json:"tasks"`
}

// ReportCache is the cache outcome as exposed in the report document.
type ReportCache struct {
	Status CacheStatus `json:"status"`
	Source CacheSource `json:"source"`
}

// ChangeCounts aggregates how many changes were seen versus considered.
type ChangeCounts struct {
	Total    int `json:"total"`
	Filtered int `json:"filtered"`
}

// AssembleReport shapes the resolver output and ancillary run metadata into
// the report document. It performs no I/O and cannot fail; rendering is the
// caller's concern.
//
// Tasks is the cross product of affected projects and task names, in
// "<project>:<task>" form, with the root sentinel excluded.
func AssembleReport(
	sinceCommit string,
	state CacheState,
	commits []Commit,
	totalChanges, filteredChanges []ChangeRecord,
	impact ImpactReport,
	taskNames []string,
) Report {
	r := Report{
		SinceCommit: sinceCommit,
		Cache:       ReportCache{Status: state.Status, Source: state.Source},
		ConfigHash:  state.ConfigHash,
		Changes: ChangeCounts{
			Total:    len(totalChanges),
			Filtered: len(filteredChanges),
		},
		Commits:          commits,
		FileDetails:      filteredChanges,
		GlobalTrigger:    impact.GlobalTrigger,
		DirectImpact:     make(map[string][]ChangeRecord, len(impact.DirectImpact)),
		TransitiveImpact: make(map[string][]string, len(impact.TransitiveImpact)),
		AffectedProjects: make([]string, 0, len(impact.AffectedProjects)),
	}

	for path, records := range impact.DirectImpact {
		r.DirectImpact[path.String()] = records
	}
	for path, causes := range impact.TransitiveImpact {
		sorted := make([]string, 0, len(causes))
		for _, cause := range causes {
			sorted = append(sorted, cause.String())
		}
		slices.Sort(sorted)
		r.TransitiveImpact[path.String()] = sorted
	}

	for _, path := range impact.AffectedProjects {
		p := path.String()
		if p == RootProjectPath {
			continue
		}
		r.AffectedProjects = append(r.AffectedProjects, p)
	}

	r.Tasks = expandTasks(r.AffectedProjects, taskNames)
	return r
}

// expandTasks yields one "<project>:<task>" entry per affected project and
// task name, preserving project order then task order.
func expandTasks(projects, taskNames []string) []string {
	tasks := make([]string, 0, len(projects)*len(taskNames))
	for _, project := range projects {
		for _, task := range taskNames {
			tasks = append(tasks, project+":"+task)
		}
	}
	return tasks
}

// TaskLine renders the task list as the single space-joined line CI consumes
// from stdout.
func (r Report) TaskLine() string {
	return strings.Join(r.Tasks, " ")
}
