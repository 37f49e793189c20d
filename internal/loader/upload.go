package loader

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "markscli/internal/errors"
	"markscli/pkg/contracts/domain"
)

// SupportedExtensions lists the input formats the loader understands.
var SupportedExtensions = []string{".csv", ".tsv", ".txt", ".xlsx"}

// IsSupportedExtension reports whether the loader can read files with the
// given extension.
func IsSupportedExtension(ext string) bool {
	for _, supported := range SupportedExtensions {
		if strings.EqualFold(ext, supported) {
			return true
		}
	}
	return false
}

// ReadUpload reads student records from an in-memory upload, choosing the
// format from the original filename's extension.
func ReadUpload(ctx context.Context, r io.Reader, filename string) ([]domain.RawRecord, error) {
	ext := filepath.Ext(filename)
	if !IsSupportedExtension(ext) {
		return nil, apperrors.NewAppValidationError("unsupported input format: " + ext)
	}
	if strings.EqualFold(ext, ".xlsx") {
		return readWorkbookFrom(ctx, r)
	}
	return ReadCSV(ctx, r)
}

// readWorkbookFrom reads xlsx content from a stream instead of a file path.
func readWorkbookFrom(ctx context.Context, r io.Reader) ([]domain.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook stream", err)
	}
	defer f.Close()

	return workbookRecords(ctx, f)
}
