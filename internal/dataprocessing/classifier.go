package dataprocessing

import (
	"strings"

	"markscli/pkg/contracts/domain"
)

// Classifier applies field presence checks and mark validation to raw
// records, producing classified rows and the aggregation key each row
// belongs to.
type Classifier struct {
	validator MarkValidator
}

// NewClassifier creates a classifier using the given mark validator.
func NewClassifier(validator MarkValidator) *Classifier {
	return &Classifier{validator: validator}
}

// Classify validates one raw record and returns the classified row together
// with its student key. Reasons accumulate in a fixed order: missing name
// first, then missing subject, then the mark-specific reason. A row with an
// empty trimmed name aggregates under the empty-string sentinel key while
// the emitted row still carries the (empty) trimmed name.
func (c *Classifier) Classify(rec domain.RawRecord) (domain.ClassifiedRow, string) {
	name := strings.TrimSpace(rec.Name)
	subject := strings.TrimSpace(rec.Subject)

	outcome := c.validator.Validate(rec.Marks)

	var reasons []domain.Reason
	key := name
	if name == "" {
		reasons = append(reasons, domain.ReasonMissingName)
	}
	if subject == "" {
		reasons = append(reasons, domain.ReasonMissingSubject)
	}
	if !outcome.IsValid() {
		reasons = append(reasons, outcome.Reason())
	}

	row := domain.ClassifiedRow{
		Name:    name,
		Subject: subject,
		Marks:   rec.Marks,
		Status:  domain.RowValid,
		Reasons: reasons,
	}
	if len(reasons) > 0 {
		row.Status = domain.RowInvalid
	}
	// The mark feeds aggregation only when the outcome is valid and no
	// presence reason fired.
	if row.Status == domain.RowValid {
		row.Mark = outcome.Value
	}
	return row, key
}

// Classify validates one raw record using the standard [0,100] mark interval.
func Classify(rec domain.RawRecord) (domain.ClassifiedRow, string) {
	return NewClassifier(NewMarkValidator()).Classify(rec)
}
