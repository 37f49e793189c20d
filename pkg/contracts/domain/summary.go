package domain

// AverageNotAvailable is the sentinel written to the AverageMarks column for
// students with no valid marks.
const AverageNotAvailable = "N/A"

// StudentStatus is the aggregate status derived for one student key.
type StudentStatus string

const (
	// StudentValid: at least one valid mark and no invalid rows.
	StudentValid StudentStatus = "Valid"
	// StudentPartial: at least one valid mark and at least one invalid row.
	StudentPartial StudentStatus = "Partial"
	// StudentInvalid: no valid marks at all.
	StudentInvalid StudentStatus = "Invalid"
)

// StudentAccumulator holds the running aggregation state for one student key:
// the valid marks in input order and the count of invalid rows. One
// accumulator exists per distinct key, created on first encounter and never
// deleted during a run.
type StudentAccumulator struct {
	Marks        []float64 `json:"marks"`
	InvalidCount int       `json:"invalid_count"`
}

// SummaryRow is the final derived statistics row for one student key.
// AverageMarks is formatted to two decimals, or AverageNotAvailable when the
// student has no valid marks. Rows are derived once after the fold completes
// and never mutated.
type SummaryRow struct {
	Name         string        `json:"name"`
	AverageMarks string        `json:"average_marks"`
	Status       StudentStatus `json:"status"`
}
