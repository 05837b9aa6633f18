package entity

import (
	"github.com/spf13/cast"
)

// Entity is a schemaless entity document: a flat mapping of field names to
// values. A nil Entity means "no entity" (e.g. an unset One-cardinality
// relation slot).
type Entity map[string]any

// Clone returns a shallow copy of the entity. A nil entity clones to nil.
func (e Entity) Clone() Entity {
	if e == nil {
		return nil
	}
	out := make(Entity, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Identity returns the normalized identity of the entity under the given
// identity field. ok is false when the entity is nil, the field is unset,
// or the value normalizes to the empty string.
func (e Entity) Identity(field string) (id string, ok bool) {
	if e == nil {
		return "", false
	}
	id, ok, err := NormalizeIdentity(e[field])
	if err != nil {
		return "", false
	}
	return id, ok
}

// NormalizeIdentity converts an identity value to its canonical string
// form so identities compare consistently across input encodings (e.g.
// JSON numbers decode as float64 while stored models carry int).
//
// A nil value or empty string means "no identity" (ok=false, no error).
// A value that cannot be represented as a string (maps, slices) returns
// an error; callers treat that as an unparseable identity, not as absent.
func NormalizeIdentity(v any) (id string, ok bool, err error) {
	if v == nil {
		return "", false, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false, err
	}
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}
