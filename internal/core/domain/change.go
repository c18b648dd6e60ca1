package domain

import (
	"path"
	"strings"
)

// ChangeStatus classifies a changed file. It is informational only and does
// not alter resolution.
type ChangeStatus string

const (
	// StatusAdded indicates the file was added.
	StatusAdded ChangeStatus = "added"
	// StatusModified indicates the file was modified.
	StatusModified ChangeStatus = "modified"
	// StatusDeleted indicates the file was deleted.
	StatusDeleted ChangeStatus = "deleted"
)

// ChangeRecord is one changed file reported by source control, with a
// repository-relative path.
type ChangeRecord struct {
	Path   string       `json:"path"`
	Status ChangeStatus `json:"status"`
}

// Commit is one source-control commit since the reference point.
type Commit struct {
	ShortHash string `json:"shortHash"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Subject   string `json:"subject"`
}

// FilterChanges drops changes whose path matches any ignore pattern.
// It is a pure filter: output preserves input order, and an empty result is a
// valid terminal state for the run.
//
// A pattern ending in "/" matches everything under that directory. A pattern
// containing glob metacharacters is matched against both the full path and
// the base name. Anything else matches as an exact path or directory prefix.
func FilterChanges(changes []ChangeRecord, ignorePatterns []string) []ChangeRecord {
	if len(ignorePatterns) == 0 {
		return changes
	}
	kept := make([]ChangeRecord, 0, len(changes))
	for _, c := range changes {
		if !matchesAny(c.Path, ignorePatterns) {
			kept = append(kept, c)
		}
	}
	return kept
}

func matchesAny(filePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(filePath, pattern) {
			return true
		}
	}
	return false
}

func matchesPattern(filePath, pattern string) bool {
	if pattern == "" {
		return false
	}
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(filePath, pattern)
	}
	if strings.ContainsAny(pattern, "*?[") {
		if ok, _ := path.Match(pattern, filePath); ok {
			return true
		}
		ok, _ := path.Match(pattern, path.Base(filePath))
		return ok
	}
	return filePath == pattern || strings.HasPrefix(filePath, pattern+"/")
}
