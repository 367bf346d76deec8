// Package persist defines the record layout the core hands to an external
// columnar codec (Parquet/Arrow or equivalent) and ships a minimal
// reference Codec sufficient for round-trip tests. Production columnar
// storage belongs to that external collaborator, not this module, so the
// implementation here is intentionally the simplest thing that satisfies
// the record layout and the round-trip contract, not a columnar storage
// engine.
package persist
