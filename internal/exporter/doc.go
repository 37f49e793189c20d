// Package exporter writes the pipeline's two output tables to disk: the
// cleaned per-row report and the per-student summary report. CSV is the
// primary format, with an optional JSON rendering of the summary for
// programmatic consumers.
//
// Writers preserve the ordering handed to them; determinism is the
// pipeline's responsibility, faithful serialization is this package's.
package exporter
