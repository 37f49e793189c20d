// Command analyzer validates a student marks file and writes the cleaned
// and summary reports.
//
// Usage:
//
//	analyzer -in data/students.csv -cleaned cleaned_students.csv -summary student_summary.csv
//
// The input format is picked by extension: .xlsx is read as a workbook,
// anything else as a delimited text file with the separator sniffed from the
// content. Exit code 0 covers the empty-input case as well; only unreadable
// input or a failed report write exits non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"markscli/internal/config"
	"markscli/internal/dataprocessing"
	"markscli/internal/exporter"
	"markscli/internal/infrastructure"
	"markscli/internal/loader"
	"markscli/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "input file (.csv, .tsv, .txt or .xlsx; defaults to paths.input_file under paths.data_dir)")
	cleaned := flag.String("cleaned", "cleaned_students.csv", "cleaned report file, resolved under paths.reports_dir unless absolute")
	summary := flag.String("summary", "student_summary.csv", "summary report file, resolved under paths.reports_dir unless absolute")
	format := flag.String("format", "csv", "summary output format: csv | json | both")
	workers := flag.Int("workers", 0, "classification workers (0 uses the configured value)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *workers > 0 {
		cfg.Processing.Workers = *workers
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *in == "" {
		*in = cfg.GetInputPath()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runID := uuid.NewString()
	ctx := infrastructure.WithTraceID(context.Background(), runID)

	logger.InfoContext(ctx, "Starting marks analysis",
		slog.String("input", *in),
		slog.String("format", *format),
		slog.Int("workers", cfg.Processing.Workers))

	records, err := loader.ReadFile(ctx, *in)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read input",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d records from %s\n", len(records), *in)
	if len(records) == 0 {
		logger.InfoContext(ctx, "No rows to process")
		fmt.Println("No rows to process.")
		return
	}

	pipeline := dataprocessing.NewPipeline(logger, dataprocessing.PipelineConfig{
		MinMark: cfg.Processing.MinMark,
		MaxMark: cfg.Processing.MaxMark,
		Workers: cfg.Processing.Workers,
	})

	rows, students, err := pipeline.Process(ctx, records)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error processing records: %v\n", err)
		os.Exit(1)
	}

	valid := 0
	for _, row := range rows {
		if row.Status == domain.RowValid {
			valid++
		}
	}
	fmt.Printf("Validated %d rows: %d valid, %d invalid\n", len(rows), valid, len(rows)-valid)

	writer := exporter.NewCSVWriter(logger)

	cleanedPath := cfg.GetReportPath(*cleaned)
	if err := writer.WriteCleanedCSV(cleanedPath, rows); err != nil {
		logger.ErrorContext(ctx, "Failed to write cleaned report",
			slog.String("path", cleanedPath),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error writing cleaned report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleaned report written to %s\n", cleanedPath)

	summaryPath := cfg.GetReportPath(*summary)
	if err := writeSummary(writer, *format, summaryPath, students); err != nil {
		logger.ErrorContext(ctx, "Failed to write summary report",
			slog.String("path", summaryPath),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error writing summary report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Summary report written for %d students\n", len(students))

	logger.InfoContext(ctx, "Analysis completed",
		slog.Int("total_rows", len(rows)),
		slog.Int("valid_rows", valid),
		slog.Int("invalid_rows", len(rows)-valid),
		slog.Int("students", len(students)),
		slog.String("cleaned_path", cleanedPath),
		slog.String("summary_path", summaryPath))
}

// writeSummary writes the summary table in the requested format. The json
// sibling of a .csv path replaces the extension.
func writeSummary(writer *exporter.CSVWriter, format, path string, students []domain.SummaryRow) error {
	switch format {
	case "csv":
		return writer.WriteSummaryCSV(path, students)
	case "json":
		return writer.WriteSummaryJSON(jsonPath(path), students)
	case "both":
		if err := writer.WriteSummaryCSV(path, students); err != nil {
			return err
		}
		return writer.WriteSummaryJSON(jsonPath(path), students)
	default:
		return fmt.Errorf("unknown summary format %q (want csv, json or both)", format)
	}
}

func jsonPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".json"
	}
	return strings.TrimSuffix(path, ext) + ".json"
}
