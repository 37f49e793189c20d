package exporter

import (
	"markscli/pkg/contracts/domain"
)

// Column layouts of the two report tables.
var (
	CleanedHeader = []string{"Name", "Subject", "Marks", "Status", "Error"}
	SummaryHeader = []string{"Name", "AverageMarks", "Status"}
)

// WriteCleanedCSV writes the cleaned per-row report, one row per input
// record in input order. Rows are streamed so large inputs do not buffer a
// second copy of the table.
func (w *CSVWriter) WriteCleanedCSV(path string, rows []domain.ClassifiedRow) error {
	stream, err := w.CreateStreamWriter(path, CleanedHeader)
	if err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.Name, row.Subject, row.Marks, string(row.Status), row.Error()}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return err
		}
	}
	return stream.Close()
}

// WriteSummaryCSV writes the per-student summary report in the order handed
// to it.
func (w *CSVWriter) WriteSummaryCSV(path string, rows []domain.SummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{row.Name, row.AverageMarks, string(row.Status)})
	}
	return w.WriteSimpleCSV(path, SummaryHeader, records)
}
