package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/impact/internal/adapters/report"
	"go.trai.ch/impact/internal/core/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		SinceCommit: "origin/main",
		Cache:       domain.ReportCache{Status: domain.CacheHit, Source: domain.SourceLocal},
		ConfigHash:  "deadbeef00000000",
		Changes:     domain.ChangeCounts{Total: 3, Filtered: 2},
		Commits: []domain.Commit{
			{ShortHash: "abc1234", Author: "Alice", Date: "2026-08-20", Subject: "tweak <util>"},
		},
		FileDetails: []domain.ChangeRecord{
			{Path: "lib/Util.kt", Status: domain.StatusModified},
		},
		DirectImpact: map[string][]domain.ChangeRecord{
			":lib": {{Path: "lib/Util.kt", Status: domain.StatusModified}},
		},
		TransitiveImpact: map[string][]string{
			":app": {":lib"},
		},
		AffectedProjects: []string{":app", ":lib"},
		Tasks:            []string{":app:test", ":lib:test"},
	}
}

func TestJSONWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")

	w := report.NewJSONWriter()
	require.NoError(t, w.Write(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "origin/main", doc["sinceCommit"])
	assert.Equal(t, []any{":app", ":lib"}, doc["affectedProjects"])
	assert.Equal(t, []any{":app:test", ":lib:test"}, doc["tasks"])

	cache, ok := doc["cache"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hit", cache["status"])
	assert.Equal(t, "local", cache["source"])

	// No global trigger fired; the key must be absent.
	_, present := doc["globalTrigger"]
	assert.False(t, present)
}

func TestHTMLRenderer_Render(t *testing.T) {
	r := report.NewHTMLRenderer()
	page, err := r.Render(sampleReport())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "origin/main")
	assert.Contains(t, html, ":app:test")
	assert.Contains(t, html, "lib/Util.kt")
	// Commit subjects are escaped.
	assert.Contains(t, html, "tweak &lt;util&gt;")
	assert.NotContains(t, html, "tweak <util>")
}

func TestHTMLRenderer_Render_GlobalTrigger(t *testing.T) {
	doc := sampleReport()
	doc.GlobalTrigger = "gradle.properties"

	r := report.NewHTMLRenderer()
	page, err := r.Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Global trigger")
	assert.Contains(t, string(page), "gradle.properties")
}
