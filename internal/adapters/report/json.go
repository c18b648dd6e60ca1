// Package report implements the machine-readable and human-readable report
// outputs. The resolver core only produces the report document; everything
// here is presentation.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONWriter persists the report document as indented JSON.
type JSONWriter struct{}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write marshals the report and writes it to path.
func (w *JSONWriter) Write(r domain.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create report directory")
	}
	//nolint:gosec // path is provided by user
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write report"), "path", path)
	}
	return nil
}
