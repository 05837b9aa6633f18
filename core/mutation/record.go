package mutation

import (
	"relcast/core/entity"
)

// Record is the structured result of diffing an entity against its prior
// state. Records are created fresh per reconciliation call and, apart from
// the documented action override, are not mutated once returned.
type Record struct {
	// Model is the prior entity this record is based on, or nil for a
	// newly created entity.
	Model entity.Entity `json:"model,omitempty"`

	// Changes maps changed field names to their new values. A key is
	// present only when the value actually differs from the model. For
	// relation fields the value is a nested *Record (One) or []*Record
	// (Many), or an already-materialized entity value.
	Changes map[string]any `json:"changes,omitempty"`

	// Errors is the ordered list of validation errors collected for this
	// record. Empty iff the record is locally valid.
	Errors []FieldError `json:"errors,omitempty"`

	// Required lists the fields that were required during this cast.
	// Diagnostic only; it does not affect validity.
	Required []string `json:"required,omitempty"`

	action   Action
	explicit bool
}

// New creates a record based on the given prior model (nil for a new
// entity) with no changes, no errors, and no action decided yet.
func New(model entity.Entity) *Record {
	return &Record{
		Model:   model,
		Changes: make(map[string]any),
	}
}

// Action returns the current action verdict. ActionNone until inferred or
// explicitly set.
func (r *Record) Action() Action {
	if r.action == "" {
		return ActionNone
	}
	return r.action
}

// SetAction records an explicit action choice, typically made by a custom
// mutation-building function. An explicit choice is authoritative: later
// engine inference will not override it.
func (r *Record) SetAction(a Action) {
	r.action = a
	r.explicit = true
}

// InferAction records an engine-inferred action. It is a no-op when an
// explicit action was already set.
func (r *Record) InferAction(a Action) {
	if r.explicit {
		return
	}
	r.action = a
}

// ActionExplicit reports whether the action was set explicitly rather than
// inferred.
func (r *Record) ActionExplicit() bool {
	return r.explicit
}

// PutChange records a changed field value.
func (r *Record) PutChange(field string, value any) {
	if r.Changes == nil {
		r.Changes = make(map[string]any)
	}
	r.Changes[field] = value
}

// GetChange returns the pending change for a field, if any.
func (r *Record) GetChange(field string) (any, bool) {
	v, ok := r.Changes[field]
	return v, ok
}

// GetField returns the effective value of a field: the pending change when
// present, otherwise the model value.
func (r *Record) GetField(field string) any {
	if v, ok := r.Changes[field]; ok {
		return v
	}
	if r.Model == nil {
		return nil
	}
	return r.Model[field]
}

// AddError appends a validation error for a field.
func (r *Record) AddError(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Valid reports whether the record and every nested record reachable
// through its changes are free of validation errors. It is always
// recomputed, never cached.
func (r *Record) Valid() bool {
	if r == nil {
		return true
	}
	if len(r.Errors) > 0 {
		return false
	}
	for _, v := range r.Changes {
		switch nested := v.(type) {
		case *Record:
			if !nested.Valid() {
				return false
			}
		case []*Record:
			for _, n := range nested {
				if !n.Valid() {
					return false
				}
			}
		}
	}
	return true
}

// Apply materializes the post-mutation entity: the model with changes
// layered on top, nested records applied recursively with their deletes
// dropped. A delete record materializes to nil.
func (r *Record) Apply() entity.Entity {
	if r == nil || r.Action() == ActionDelete {
		return nil
	}
	out := r.Model.Clone()
	if out == nil {
		out = make(entity.Entity, len(r.Changes))
	}
	for k, v := range r.Changes {
		switch nested := v.(type) {
		case *Record:
			if applied := nested.Apply(); applied != nil {
				out[k] = applied
			} else {
				out[k] = nil
			}
		case []*Record:
			applied := make([]entity.Entity, 0, len(nested))
			for _, n := range nested {
				if e := n.Apply(); e != nil {
					applied = append(applied, e)
				}
			}
			out[k] = applied
		default:
			out[k] = v
		}
	}
	return out
}
