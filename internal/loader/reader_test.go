package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "markscli/internal/errors"
	"markscli/pkg/contracts/domain"
)

func TestReadCSV(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  []domain.RawRecord
	}{
		{
			name:  "with header",
			input: "Name,Subject,Marks\nAlice,Math,85\nBob,Science,70\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
				{Name: "Bob", Subject: "Science", Marks: "70"},
			},
		},
		{
			name:  "without header first row is data",
			input: "Alice,Math,85\nBob,Science,70\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
				{Name: "Bob", Subject: "Science", Marks: "70"},
			},
		},
		{
			name:  "semicolon delimited",
			input: "Name;Subject;Marks\nAlice;Math;85\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
			},
		},
		{
			name:  "tab delimited",
			input: "Alice\tMath\t85\nBob\tScience\t70\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
				{Name: "Bob", Subject: "Science", Marks: "70"},
			},
		},
		{
			name:  "missing columns map to empty",
			input: "Alice,Math\nBob\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: ""},
				{Name: "Bob", Subject: "", Marks: ""},
			},
		},
		{
			name:  "cells are trimmed",
			input: " Alice , Math , 85 \n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
			},
		},
		{
			name:  "utf8 bom stripped before header detection",
			input: "\xef\xbb\xbfName,Subject,Marks\nAlice,Math,85\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
			},
		},
		{
			name:  "extra columns ignored",
			input: "Alice,Math,85,extra\n",
			want: []domain.RawRecord{
				{Name: "Alice", Subject: "Math", Marks: "85"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadCSV(ctx, strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, records)
		})
	}
}

func TestReadCSV_Empty(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = ReadCSV(context.Background(), strings.NewReader("\n\n  \n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNormalizeRow_FallbackSeparators(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		delim  rune
		want   []string
	}{
		{
			name:   "already three fields",
			fields: []string{"Alice", "Math", "85"},
			delim:  ',',
			want:   []string{"Alice", "Math", "85"},
		},
		{
			name:   "single field re-split with detected delimiter",
			fields: []string{"Alice;Math;85"},
			delim:  ';',
			want:   []string{"Alice", "Math", "85"},
		},
		{
			name:   "single field re-split with fallback tab",
			fields: []string{"Alice\tMath\t85"},
			delim:  ',',
			want:   []string{"Alice", "Math", "85"},
		},
		{
			name:   "single field re-split with fallback pipe",
			fields: []string{"Alice|Math|85"},
			delim:  ',',
			want:   []string{"Alice", "Math", "85"},
		},
		{
			name:   "unsplittable single field passes through",
			fields: []string{"Alice"},
			delim:  ',',
			want:   []string{"Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeRow(tt.fields, tt.delim))
		})
	}
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Subject,Marks\nAlice,Math,85\n"), 0644))

	records, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []domain.RawRecord{{Name: "Alice", Subject: "Math", Marks: "85"}}, records)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Subject", "Marks"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Alice", "Math", 85}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Bob", "", "abc"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []domain.RawRecord{
		{Name: "Alice", Subject: "Math", Marks: "85"},
		{Name: "Bob", Subject: "", Marks: "abc"},
	}, records)
}
