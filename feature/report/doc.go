// Package report provides read-only reporting and validation over the
// finished store: row counts, load history by insertion timestamp, per-type
// rollups, and a data quality report covering referential integrity,
// duplicates, and value-range sanity checks.
//
// Reporting never feeds back into generation.
package report
