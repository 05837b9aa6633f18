package relation

import (
	"fmt"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// Change reconciles one relation field from already-structured values: the
// new value is an entity, a pre-built mutation record, or a collection of
// them, not raw parameters. Unlike Cast, any malformed shape is fatal: the
// caller constructed the value and a bad shape is a programming error.
func Change(d *Descriptor, newVal, oldVal any) (*Result, error) {
	build := d.builder(nil)

	switch d.Cardinality {
	case One:
		return changeOne(d, newVal, oldVal, build)
	case Many:
		return changeMany(d, newVal, oldVal, build)
	default:
		return nil, fmt.Errorf("descriptor %s.%s: unknown cardinality %q", d.Owner, d.Field, d.Cardinality)
	}
}

func changeOne(d *Descriptor, newVal, oldVal any, build BuildFunc) (*Result, error) {
	old, err := asEntity(oldVal)
	if err != nil {
		return nil, err
	}

	nv, err := normalizeOneChange(newVal)
	if err != nil {
		return nil, err
	}

	rec, changed, err := reconcileOne(d, old, nv, build)
	if err != nil {
		return nil, err
	}
	return &Result{One: rec, Changed: changed, Valid: rec.Valid()}, nil
}

func changeMany(d *Descriptor, newVal, oldVal any, build BuildFunc) (*Result, error) {
	old, err := asEntities(oldVal)
	if err != nil {
		return nil, err
	}

	seq, err := normalizeManyChange(d, newVal)
	if err != nil {
		return nil, err
	}

	recs, changed, err := reconcileMany(d, old, seq, build)
	if err != nil {
		return nil, err
	}

	valid := true
	for _, rec := range recs {
		if !rec.Valid() {
			valid = false
			break
		}
	}
	return &Result{Many: recs, Changed: changed, Valid: valid}, nil
}

// normalizeOneChange validates the structured new value for a One slot.
// Plain maps are taken as structured entities, not raw params.
func normalizeOneChange(newVal any) (any, error) {
	switch v := newVal.(type) {
	case nil:
		return nil, nil
	case entity.Entity:
		if v == nil {
			return nil, nil
		}
		return v, nil
	case map[string]any:
		return entity.Entity(v), nil
	case *mutation.Record:
		if v == nil {
			return nil, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected entity or mutation record, got %T", ErrInvalidShape, newVal)
	}
}

// normalizeManyChange validates the structured new value for a Many slot
// and normalizes it into an ordered element sequence. Positional maps are
// normalized by ascending position; elements must be entities or mutation
// records.
func normalizeManyChange(d *Descriptor, newVal any) ([]any, error) {
	if recs, ok := newVal.([]*mutation.Record); ok {
		seq := make([]any, len(recs))
		for i, rec := range recs {
			if rec == nil {
				return nil, fmt.Errorf("%w: nil record element %d in collection for field %q", ErrInvalidShape, i, d.Field)
			}
			seq[i] = rec
		}
		return seq, nil
	}

	var seq []any
	v := entity.Classify(newVal)
	switch v.Kind {
	case entity.KindSequence:
		seq = v.Sequence
	case entity.KindMap:
		sorted, err := entity.SortedByPosition(v.Map)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		seq = sorted
	default:
		return nil, fmt.Errorf("%w: expected collection for field %q, got %T", ErrInvalidShape, d.Field, newVal)
	}

	out := make([]any, len(seq))
	for i, el := range seq {
		nv, err := normalizeOneChange(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if nv == nil {
			return nil, fmt.Errorf("%w: nil element %d in collection for field %q", ErrInvalidShape, i, d.Field)
		}
		out[i] = nv
	}
	return out, nil
}
