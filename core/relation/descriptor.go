package relation

import (
	"relcast/core/entity"
	"relcast/core/mutation"
)

// Cardinality states whether a relation field holds a single nested entity
// or an ordered collection.
type Cardinality string

const (
	// One is a single nested entity slot.
	One Cardinality = "one"
	// Many is an ordered collection of nested entities.
	Many Cardinality = "many"
)

// Strategy is the reconciliation policy for old entities missing from the
// new desired set.
type Strategy string

const (
	// StrategyReplace deletes unmatched old entities instead of
	// re-parenting them. The only supported strategy.
	StrategyReplace Strategy = "replace"
)

// BuildFunc is the pluggable mutation-building function invoked to diff one
// nested entity against raw parameters. model is the matched prior entity
// or nil for a new one. Implementations must never fail for well-typed
// input: validation problems are reported through the record's errors.
// They may set the record's action explicitly, which the engine treats as
// authoritative.
type BuildFunc func(model entity.Entity, params map[string]any) *mutation.Record

// DefaultIdentityField is the identity field used when a descriptor does
// not name one.
const DefaultIdentityField = "id"

// Descriptor is the static metadata for one relation field on a parent
// entity. Constructed at schema-definition time and read-only thereafter.
type Descriptor struct {
	// Field is the name of the relation field on the parent.
	Field string

	// Cardinality is One or Many.
	Cardinality Cardinality

	// Owner is the parent entity type tag.
	Owner string

	// Related is the nested entity type tag.
	Related string

	// Strategy is the replacement strategy. Defaults to StrategyReplace.
	Strategy Strategy

	// IdentityField names the primary-key-like field used to match old and
	// new nested entities. Defaults to DefaultIdentityField.
	IdentityField string

	// OnCast is the mutation-building function used during casting. When
	// nil, a conventional diff builder is used: every param that differs
	// from the model becomes a change, with no extra validation.
	OnCast BuildFunc
}

// identityField returns the configured identity field or the default.
func (d *Descriptor) identityField() string {
	if d.IdentityField == "" {
		return DefaultIdentityField
	}
	return d.IdentityField
}

// builder returns the mutation-building function for this descriptor,
// honoring an override when given.
func (d *Descriptor) builder(override BuildFunc) BuildFunc {
	if override != nil {
		return override
	}
	if d.OnCast != nil {
		return d.OnCast
	}
	return diffBuild
}
