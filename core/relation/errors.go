package relation

import "errors"

// Fatal reconciliation errors. These indicate a programming or client
// contract violation and abort the current call; they are never folded
// into a record's validation errors.
var (
	// ErrUnmatchedIdentity reports a supplied identity that does not
	// correspond to any identity in the old-side set being reconciled.
	ErrUnmatchedIdentity = errors.New("identity not found in prior value")

	// ErrInvalidShape reports a new value whose shape does not fit the
	// relation (wrong type for the cardinality, or an element that is not
	// a recognizable entity, record, or map). Fatal on the Change path;
	// degraded to a field-level "is invalid" error on the Cast path.
	ErrInvalidShape = errors.New("value has invalid shape for relation")

	// ErrUnknownRelation reports a schema lookup for a relation field the
	// owner does not declare.
	ErrUnknownRelation = errors.New("unknown relation field")
)
