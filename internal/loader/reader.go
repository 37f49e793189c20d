package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "markscli/internal/errors"
	"markscli/pkg/contracts/domain"
)

// fallback separators tried when a row arrives as a single field
var fallbackSeparators = []string{"\t", ",", ";", "|"}

// ReadFile reads a student records file and returns its rows as ordered
// RawRecords. The format is chosen by extension: .xlsx goes through the
// workbook reader, everything else is treated as delimited text. An empty
// file yields zero records without error.
func ReadFile(ctx context.Context, path string) ([]domain.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadWorkbook(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("input file " + path)
		}
		return nil, apperrors.NewStorageError("failed to open input file", err)
	}
	defer f.Close()

	records, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "loaded delimited input",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

// ReadCSV reads delimited text from r. The delimiter is sniffed from the
// first 2KB of input; an initial row whose cells spell name/subject/marks is
// treated as a header and skipped. Rows are mapped best-effort from their
// first three columns, with empty strings for absent columns.
func ReadCSV(ctx context.Context, r io.Reader) ([]domain.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read input", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	// Strip a UTF-8 BOM so the first header cell compares cleanly.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	sampleEnd := len(data)
	if sampleEnd > sniffSampleSize {
		sampleEnd = sniffSampleSize
	}
	delim := DetectDelimiter(string(data[:sampleEnd]))

	slog.DebugContext(ctx, "sniffed delimiter", slog.String("delimiter", string(delim)))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []domain.RawRecord
	first := true
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to parse delimited input", err)
		}

		fields = normalizeRow(fields, delim)
		if first {
			first = false
			if IsHeaderRow(fields) {
				continue
			}
		}
		records = append(records, toRecord(fields))
	}

	return records, nil
}

// normalizeRow re-splits rows that arrived as a single field, first with the
// sniffed delimiter and then with the common fallback separators. Rows that
// already have three or more fields pass through untouched.
func normalizeRow(fields []string, delim rune) []string {
	if len(fields) >= 3 || len(fields) == 0 {
		return fields
	}

	separators := append([]string{string(delim)}, fallbackSeparators...)
	for _, sep := range separators {
		parts := strings.Split(fields[0], sep)
		if len(parts) >= 3 {
			return parts
		}
	}
	return fields
}

// toRecord maps the first three columns of a row into a RawRecord, trimming
// each cell. Absent columns map to the empty string.
func toRecord(fields []string) domain.RawRecord {
	cell := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}
	return domain.RawRecord{
		Name:    cell(0),
		Subject: cell(1),
		Marks:   cell(2),
	}
}
