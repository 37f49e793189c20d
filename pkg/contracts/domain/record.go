package domain

import "strings"

// RawRecord is one unparsed input row as delivered by the tabular source
// reader: three free-text fields, empty string when a column is absent.
// Records carry no identity beyond their position in the input sequence.
type RawRecord struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Marks   string `json:"marks"`
}

// MarkOutcomeKind enumerates the possible results of validating a marks field.
type MarkOutcomeKind int

const (
	// MarkValid means the marks text parsed to a number inside the allowed range.
	MarkValid MarkOutcomeKind = iota
	// MarkMissing means the marks text was empty after trimming.
	MarkMissing
	// MarkNotNumeric means the marks text did not parse as a decimal number.
	MarkNotNumeric
	// MarkOutOfRange means the marks text parsed but fell outside the allowed range.
	MarkOutOfRange
)

// MarkOutcome is the tagged result of validating a single marks field.
// Value is meaningful only when Kind is MarkValid.
type MarkOutcome struct {
	Kind  MarkOutcomeKind
	Value float64
}

// IsValid reports whether the outcome carries a usable numeric mark.
func (o MarkOutcome) IsValid() bool {
	return o.Kind == MarkValid
}

// Reason reports whether the outcome maps to a data-quality reason,
// returning ReasonNone for valid outcomes.
func (o MarkOutcome) Reason() Reason {
	switch o.Kind {
	case MarkMissing:
		return ReasonMissingMarks
	case MarkNotNumeric:
		return ReasonInvalidMarks
	case MarkOutOfRange:
		return ReasonMarksOutOfRange
	default:
		return ReasonNone
	}
}

// Reason identifies a single data-quality finding on a row. Findings are
// recorded as data, never raised as errors; the display phrase is produced
// only at the report boundary.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMissingName
	ReasonMissingSubject
	ReasonMissingMarks
	ReasonInvalidMarks
	ReasonMarksOutOfRange
)

// String returns the display phrase used in the cleaned report's Error column.
func (r Reason) String() string {
	switch r {
	case ReasonMissingName:
		return "Missing Name"
	case ReasonMissingSubject:
		return "Missing Subject"
	case ReasonMissingMarks:
		return "Missing Marks"
	case ReasonInvalidMarks:
		return "Invalid Marks"
	case ReasonMarksOutOfRange:
		return "Marks Out of Range"
	default:
		return ""
	}
}

// RowStatus is the overall validation status of a classified row.
type RowStatus string

const (
	RowValid   RowStatus = "Valid"
	RowInvalid RowStatus = "Invalid"
)

// ClassifiedRow is the validation result for one RawRecord. It is derived
// deterministically from the record and never mutated after creation.
// Mark holds the parsed numeric value and is meaningful only when Status is
// RowValid; Marks preserves the original field text for the cleaned report.
type ClassifiedRow struct {
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Marks   string    `json:"marks"`
	Status  RowStatus `json:"status"`
	Reasons []Reason  `json:"-"`
	Mark    float64   `json:"-"`
}

// Error joins the row's reasons into the display string for the cleaned
// report, preserving classification order. Empty when the row is valid.
func (c ClassifiedRow) Error() string {
	if len(c.Reasons) == 0 {
		return ""
	}
	phrases := make([]string, len(c.Reasons))
	for i, r := range c.Reasons {
		phrases[i] = r.String()
	}
	return strings.Join(phrases, "; ")
}
