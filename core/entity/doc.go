// Package entity defines the schemaless entity document used by the
// reconciliation engine, plus the normalization helpers the cast pipeline
// relies on: identity extraction, raw-value shape classification, and
// positional-map ordering.
//
// # Entities
//
// An Entity is a flat field → value document. The engine never interprets
// field values beyond the identity field named by a relation descriptor;
// everything else passes through untouched.
//
// # Shape classification
//
// Raw parameter payloads arrive untyped (usually decoded JSON). Classify
// turns a raw value into an explicit, exhaustive Value variant (nil, map,
// sequence, scalar) so callers branch on shape instead of probing types
// at every call site.
//
// # Positional maps
//
// Some parameter sources key collection elements by position ("0", "1",
// ...) instead of shipping an ordered array. SortedByPosition normalizes
// such a map into an ordered sequence, rejecting keys that do not parse
// as integers.
package entity
