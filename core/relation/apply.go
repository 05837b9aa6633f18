package relation

import (
	"relcast/core/entity"
	"relcast/core/mutation"
)

// Apply materializes a One-cardinality mutation record into its
// post-mutation entity: changes layered over the model, nil for a delete
// or a nil record.
func Apply(d *Descriptor, rec *mutation.Record) entity.Entity {
	return rec.Apply()
}

// ApplyMany materializes an ordered record sequence, dropping elements
// marked for deletion and preserving the order of the rest.
func ApplyMany(d *Descriptor, recs []*mutation.Record) []entity.Entity {
	out := make([]entity.Entity, 0, len(recs))
	for _, rec := range recs {
		if e := rec.Apply(); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Empty returns the canonical "nothing" value for the descriptor's
// cardinality: nil for One, an empty collection for Many. Used as the
// baseline for required checks.
func Empty(d *Descriptor) any {
	if d.Cardinality == Many {
		return []entity.Entity{}
	}
	return nil
}
