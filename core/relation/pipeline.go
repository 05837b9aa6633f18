package relation

import (
	"fmt"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// CastRelations casts every listed relation field of a parent and folds the
// per-field results into the parent's mutation record: a field contributes
// a change entry only when it actually changed, field-level errors land on
// the parent, and the parent's validity degrades through the recursive
// Valid fold whenever a nested record is invalid.
//
// The parent record's Model is the prior parent entity; its other direct
// fields are owned by the surrounding single-entity pipeline and are left
// untouched here.
func CastRelations(schema Schema, parent *mutation.Record, owner string, params entity.Params, fields, required []string, opts ...CastOption) error {
	for _, field := range fields {
		d, ok := schema.Relation(owner, field)
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownRelation, owner, field)
		}

		res, err := Cast(d, parent.Model, params, required, opts...)
		if err != nil {
			return err
		}

		if contains(required, field) {
			parent.Required = append(parent.Required, field)
		}
		if res.FieldError != nil {
			parent.AddError(res.FieldError.Field, res.FieldError.Message)
		}
		if res.Changed {
			switch d.Cardinality {
			case Many:
				parent.PutChange(field, res.Many)
			default:
				parent.PutChange(field, res.One)
			}
		}
	}
	return nil
}
