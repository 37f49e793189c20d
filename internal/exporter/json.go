package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"markscli/pkg/contracts/domain"
)

// summaryDocument is the JSON rendering of the summary report.
type summaryDocument struct {
	Students    []domain.SummaryRow `json:"students"`
	Count       int                 `json:"count"`
	GeneratedAt string              `json:"generated_at"`
	Format      string              `json:"format"`
}

// WriteSummaryJSON writes the per-student summary with metadata for
// programmatic consumers.
func (w *CSVWriter) WriteSummaryJSON(path string, rows []domain.SummaryRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	doc := summaryDocument{
		Students:    rows,
		Count:       len(rows),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Format:      "student_summary_v1",
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode summary JSON: %w", err)
	}
	return nil
}
