package report

import (
	"bytes"
	"html/template"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders the report document as a single static page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTMLRenderer with the built-in template.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("report").Parse(pageTemplate)),
	}
}

// Render produces the HTML page for the given report.
func (r *HTMLRenderer) Render(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, report); err != nil {
		return nil, zerr.Wrap(err, "failed to render report")
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Impact report since {{.SinceCommit}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
code { background: #f4f4f4; padding: 0 0.2rem; }
.trigger { color: #b00; font-weight: bold; }
</style>
</head>
<body>
<h1>Impact report</h1>
<p>Since <code>{{.SinceCommit}}</code> &mdash; cache {{.Cache.Status}} ({{.Cache.Source}}),
config hash <code>{{.ConfigHash}}</code>,
{{.Changes.Filtered}} of {{.Changes.Total}} changes considered.</p>
{{if .GlobalTrigger}}<p class="trigger">Global trigger: <code>{{.GlobalTrigger}}</code> &mdash; all projects affected.</p>{{end}}

<h2>Affected projects ({{len .AffectedProjects}})</h2>
<table>
<tr><th>Project</th><th>Direct changes</th><th>Caused by</th></tr>
{{range $project := .AffectedProjects}}
<tr>
<td><code>{{$project}}</code></td>
<td>{{range index $.DirectImpact $project}}<code>{{.Path}}</code> ({{.Status}})<br>{{end}}</td>
<td>{{range index $.TransitiveImpact $project}}<code>{{.}}</code><br>{{end}}</td>
</tr>
{{end}}
</table>

<h2>Tasks ({{len .Tasks}})</h2>
<p>{{range .Tasks}}<code>{{.}}</code> {{end}}</p>

<h2>Commits ({{len .Commits}})</h2>
<table>
<tr><th>Hash</th><th>Author</th><th>Date</th><th>Subject</th></tr>
{{range .Commits}}
<tr><td><code>{{.ShortHash}}</code></td><td>{{.Author}}</td><td>{{.Date}}</td><td>{{.Subject}}</td></tr>
{{end}}
</table>

<h2>Changed files ({{len .FileDetails}})</h2>
<table>
<tr><th>Status</th><th>Path</th></tr>
{{range .FileDetails}}
<tr><td>{{.Status}}</td><td><code>{{.Path}}</code></td></tr>
{{end}}
</table>
</body>
</html>
`
