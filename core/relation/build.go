package relation

import (
	"fmt"
	"reflect"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// diffBuild is the conventional mutation-building function used when a
// descriptor declares none: every param whose value differs from the model
// becomes a change. It performs no validation.
func diffBuild(model entity.Entity, params map[string]any) *mutation.Record {
	rec := mutation.New(model)
	for k, v := range params {
		if model != nil && reflect.DeepEqual(model[k], v) {
			continue
		}
		rec.PutChange(k, v)
	}
	return rec
}

// reconcileElement builds the mutation record for one new element against
// its matched old entity (old is nil for a genuinely new element). Callers
// have already performed identity matching; this only builds the record and
// infers the action.
func reconcileElement(d *Descriptor, old entity.Entity, elem any, build BuildFunc) (*mutation.Record, error) {
	var rec *mutation.Record
	switch v := elem.(type) {
	case map[string]any:
		rec = build(old, v)
	case entity.Entity:
		// Structured new value: diff the desired entity against the old
		// one field by field.
		rec = diffBuild(old, map[string]any(v))
	case *mutation.Record:
		// Pre-built by the caller (e.g. a nested change). Accepted as-is;
		// only the action may still be adjusted below.
		rec = v
	default:
		return nil, fmt.Errorf("%w: element of type %T", ErrInvalidShape, elem)
	}
	if rec == nil {
		return nil, fmt.Errorf("mutation builder for %q returned nil record", d.Field)
	}
	rec.InferAction(inferAction(old != nil, true))
	return rec, nil
}

// deleteRecord builds the delete-actioned record for an old entity missing
// from the new desired set. Delete records carry no changes.
func deleteRecord(old entity.Entity) *mutation.Record {
	rec := mutation.New(old)
	rec.InferAction(mutation.ActionDelete)
	return rec
}

// elementIdentity extracts the normalized identity of a new-side element.
// ok is false when the element carries no identity (legal only for new
// entities). An identity that cannot be parsed is a shape violation.
func elementIdentity(d *Descriptor, elem any) (id string, ok bool, err error) {
	field := d.identityField()
	var raw any
	switch v := elem.(type) {
	case map[string]any:
		raw = v[field]
	case entity.Entity:
		raw = v[field]
	case *mutation.Record:
		// A pre-built record is identified by the model it was based on;
		// records without a model are new entities.
		if v.Model == nil {
			return "", false, nil
		}
		raw = v.Model[field]
	default:
		return "", false, fmt.Errorf("%w: element of type %T", ErrInvalidShape, elem)
	}
	id, ok, perr := entity.NormalizeIdentity(raw)
	if perr != nil {
		return "", false, fmt.Errorf("%w: unparseable identity: %v", ErrInvalidShape, perr)
	}
	return id, ok, nil
}
