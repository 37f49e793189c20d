// Package dataprocessing implements the student marks validation and
// aggregation pipeline. It consolidates the decision logic of the system:
// field validation, row classification, per-student accumulation and
// summary derivation.
//
// # Architecture
//
// The package is organized into four components, applied in order:
//
//  1. MarkValidator: validates a single marks field against numeric-range rules
//  2. Classifier: applies presence checks plus the validator to a raw record
//  3. Accumulators: folds classified rows into per-student state
//  4. Summarizer: derives the final per-student summary rows
//
// # Data Flow
//
//	RawRecords → Classifier → ClassifiedRows → Accumulators → Summarizer → SummaryRows
//
// The cleaned rows and the summary rows are the two externally consumed
// outputs; Pipeline ties the components together for callers that want the
// whole transform in one call.
//
// # Error Handling
//
// Validation failures are data-quality findings recorded on the rows
// themselves, never Go errors. Given well-formed in-memory records the
// transform has no failure mode of its own; even a record with all-empty
// fields classifies deterministically.
//
// # Testing
//
// Use table-driven tests when adding new functionality.
package dataprocessing
