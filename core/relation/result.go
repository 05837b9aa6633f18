package relation

import "relcast/core/mutation"

// Result is the outcome of reconciling one relation field. Exactly one of
// One/Many is populated depending on the descriptor's cardinality; both are
// empty when the field reconciled to no change.
type Result struct {
	// One is the mutation record for a One-cardinality field, or nil when
	// nothing changed.
	One *mutation.Record

	// Many is the ordered record sequence for a Many-cardinality field.
	Many []*mutation.Record

	// Changed reports whether the field must be listed among the parent's
	// changes.
	Changed bool

	// Valid reports whether every produced record is valid and no
	// field-level error was raised.
	Valid bool

	// FieldError is the field-level validation error ("can't be blank",
	// "is invalid"), if any. Field-level errors suppress per-element error
	// collection for the field.
	FieldError *mutation.FieldError
}

// Records returns the produced records regardless of cardinality.
func (r *Result) Records() []*mutation.Record {
	if r.One != nil {
		return []*mutation.Record{r.One}
	}
	return r.Many
}

// Summary aggregates action counts over a result, mirroring the report
// shape consumed by the CLI.
type Summary struct {
	// Inserts counts insert-actioned records.
	Inserts int `json:"inserts"`
	// Updates counts update-actioned records.
	Updates int `json:"updates"`
	// Deletes counts delete-actioned records.
	Deletes int `json:"deletes"`
	// Invalid counts records carrying validation errors.
	Invalid int `json:"invalid"`
}

// Summarize computes the action summary for the result's records.
func (r *Result) Summarize() Summary {
	var s Summary
	for _, rec := range r.Records() {
		switch rec.Action() {
		case mutation.ActionInsert:
			s.Inserts++
		case mutation.ActionUpdate:
			s.Updates++
		case mutation.ActionDelete:
			s.Deletes++
		}
		if !rec.Valid() {
			s.Invalid++
		}
	}
	return s
}
