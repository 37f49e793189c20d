package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"markscli/pkg/contracts/domain"
)

// Summarizer derives the final per-student summary rows from the folded
// aggregation state. It is the single source of truth for average formatting
// and student status derivation.
type Summarizer struct {
	logger        *slog.Logger
	decimalPlaces int
}

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	DecimalPlaces int // Number of decimal places for formatted averages
}

// DefaultSummarizerConfig returns the standard two-decimal configuration.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{DecimalPlaces: 2}
}

// NewSummarizer creates a new summarizer with the given configuration.
func NewSummarizer(logger *slog.Logger, config SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.DecimalPlaces <= 0 {
		config.DecimalPlaces = 2
	}
	return &Summarizer{
		logger:        logger,
		decimalPlaces: config.DecimalPlaces,
	}
}

// Build derives one SummaryRow per student key. Rows are ordered by
// case-insensitive comparison of the key; keys that compare equal keep their
// first-encounter order. Averages are formatted with fmt's %.2f, which
// rounds half to even; students with no valid marks get the N/A sentinel and
// Invalid status. Output is total-order deterministic for identical input.
func (s *Summarizer) Build(ctx context.Context, accs *Accumulators) []domain.SummaryRow {
	keys := accs.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
	})

	rows := make([]domain.SummaryRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, s.summarize(key, accs.Get(key)))
	}

	s.logger.InfoContext(ctx, "built student summary",
		slog.Int("student_count", len(rows)))

	return rows
}

// summarize derives the summary row for a single student key.
func (s *Summarizer) summarize(key string, acc *domain.StudentAccumulator) domain.SummaryRow {
	row := domain.SummaryRow{Name: key}

	if len(acc.Marks) == 0 {
		row.AverageMarks = domain.AverageNotAvailable
		row.Status = domain.StudentInvalid
		return row
	}

	var sum float64
	for _, mark := range acc.Marks {
		sum += mark
	}
	avg := sum / float64(len(acc.Marks))
	row.AverageMarks = fmt.Sprintf("%.*f", s.decimalPlaces, avg)

	if acc.InvalidCount > 0 {
		row.Status = domain.StudentPartial
	} else {
		row.Status = domain.StudentValid
	}
	return row
}
