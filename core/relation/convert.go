package relation

import (
	"fmt"

	"relcast/core/entity"
)

// asEntity converts a prior or structured value into an entity document.
// nil stays nil; anything that is not map-shaped is a shape violation.
func asEntity(v any) (entity.Entity, error) {
	switch e := v.(type) {
	case nil:
		return nil, nil
	case entity.Entity:
		return e, nil
	case map[string]any:
		return entity.Entity(e), nil
	default:
		return nil, fmt.Errorf("%w: expected entity, got %T", ErrInvalidShape, v)
	}
}

// asEntities converts a prior or structured collection value into an
// ordered entity slice. nil stays nil.
func asEntities(v any) ([]entity.Entity, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case []entity.Entity:
		return s, nil
	case []map[string]any:
		out := make([]entity.Entity, len(s))
		for i, m := range s {
			out[i] = entity.Entity(m)
		}
		return out, nil
	case []any:
		out := make([]entity.Entity, len(s))
		for i, el := range s {
			e, err := asEntity(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected entity collection, got %T", ErrInvalidShape, v)
	}
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
