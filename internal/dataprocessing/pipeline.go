package dataprocessing

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"markscli/pkg/contracts/domain"
)

// Pipeline runs the full transform: classify every raw record, fold the
// classified rows into per-student accumulators, and build the summary.
// Classification is pure and row-independent, so it may run in parallel;
// the fold always stays sequential in input order.
type Pipeline struct {
	classifier *Classifier
	summarizer *Summarizer
	logger     *slog.Logger
	workers    int
}

// PipelineConfig holds configuration options for the Pipeline.
type PipelineConfig struct {
	MinMark float64 // Lower mark bound, inclusive
	MaxMark float64 // Upper mark bound, inclusive
	Workers int     // Classification worker count; <=1 means sequential
}

// DefaultPipelineConfig returns the standard [0,100] sequential configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{MinMark: DefaultMinMark, MaxMark: DefaultMaxMark, Workers: 1}
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(logger *slog.Logger, config PipelineConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxMark <= config.MinMark {
		config.MinMark = DefaultMinMark
		config.MaxMark = DefaultMaxMark
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Pipeline{
		classifier: NewClassifier(MarkValidator{Min: config.MinMark, Max: config.MaxMark}),
		summarizer: NewSummarizer(logger, DefaultSummarizerConfig()),
		logger:     logger,
		workers:    config.Workers,
	}
}

// Process transforms raw records into the two output tables: the cleaned
// rows in input order and the summary rows in deterministic report order.
// The only error condition is context cancellation; validation findings are
// carried on the rows themselves.
func (p *Pipeline) Process(ctx context.Context, records []domain.RawRecord) ([]domain.ClassifiedRow, []domain.SummaryRow, error) {
	p.logger.InfoContext(ctx, "processing records",
		slog.Int("record_count", len(records)),
		slog.Int("workers", p.workers))

	cleaned := make([]domain.ClassifiedRow, len(records))
	keys := make([]string, len(records))

	if p.workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for i := range records {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				cleaned[i], keys[i] = p.classifier.Classify(records[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			cleaned[i], keys[i] = p.classifier.Classify(records[i])
		}
	}

	accs := NewAccumulators()
	for i := range cleaned {
		accs.Fold(keys[i], cleaned[i])
	}

	summary := p.summarizer.Build(ctx, accs)

	validRows := 0
	for i := range cleaned {
		if cleaned[i].Status == domain.RowValid {
			validRows++
		}
	}
	p.logger.InfoContext(ctx, "processing complete",
		slog.Int("valid_rows", validRows),
		slog.Int("invalid_rows", len(cleaned)-validRows),
		slog.Int("student_count", accs.Len()))

	return cleaned, summary, nil
}
