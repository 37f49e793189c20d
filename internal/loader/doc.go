// Package loader reads loosely-structured tabular student files and maps
// them into ordered RawRecords for the validation pipeline. It owns the
// heuristic parts of ingestion: delimiter sniffing, header detection and
// best-effort mapping of the first three columns into (name, subject, marks).
//
// The heuristics are best-effort by design. Ambiguous inputs (for example a
// single-column file that only splits under a fallback separator) get a
// reasonable guess, not a guaranteed contract; the validation core treats
// whatever comes out as untyped text and classifies it deterministically.
//
// Supported inputs are delimited text files (csv, tsv, txt) and xlsx
// workbooks, where the first sheet is read.
package loader
