package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"NarrativeScanner/internal/domain"
	"NarrativeScanner/internal/ports"
)

// JSONWriter dumps reports as indented JSON files keyed by calendar date.
type JSONWriter struct {
	dir string
}

var _ ports.ReportWriter = (*JSONWriter)(nil)

// NewJSONWriter writes into dir; an empty dir means the working directory.
func NewJSONWriter(dir string) *JSONWriter {
	if dir == "" {
		dir = "."
	}
	return &JSONWriter{dir: dir}
}

// FileName returns the file name used for a report.
func FileName(report domain.Report) string {
	return fmt.Sprintf("narratives-%s.json", report.Day())
}

// Write stores the report and returns the file path. A same-day report is overwritten.
func (w *JSONWriter) Write(ctx context.Context, report domain.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(w.dir, FileName(report))
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return path, nil
}
