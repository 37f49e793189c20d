package loader

import (
	"context"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "markscli/internal/errors"
	"markscli/pkg/contracts/domain"
)

// ReadWorkbook reads student records from the first sheet of an xlsx
// workbook, applying the same header detection and three-column mapping as
// the delimited reader.
func ReadWorkbook(ctx context.Context, path string) ([]domain.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err)
	}
	defer f.Close()

	records, err := workbookRecords(ctx, f)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "loaded workbook input",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

// workbookRecords extracts records from the first sheet of an open workbook.
func workbookRecords(ctx context.Context, f *excelize.File) ([]domain.RawRecord, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read workbook rows", err)
	}

	var records []domain.RawRecord
	for i, row := range rows {
		if i == 0 && IsHeaderRow(row) {
			continue
		}
		if isEmptyRow(row) {
			continue
		}
		records = append(records, toRecord(row))
	}

	slog.DebugContext(ctx, "mapped workbook rows",
		slog.String("sheet", sheets[0]),
		slog.Int("record_count", len(records)))

	return records, nil
}

// isEmptyRow reports whether every cell of a row is blank. Trailing blank
// rows are common in exported workbooks and carry no record.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
