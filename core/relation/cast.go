package relation

import (
	"errors"
	"fmt"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// CastOption tunes a single Cast call.
type CastOption func(*castConfig)

type castConfig struct {
	build BuildFunc
}

// WithBuilder overrides the mutation-building function for one cast call,
// instead of the descriptor's OnCast.
func WithBuilder(fn BuildFunc) CastOption {
	return func(c *castConfig) {
		c.build = fn
	}
}

// Cast reconciles one relation field from untrusted raw parameters. It is
// invoked once per relation field during parent casting.
//
// params is the parent's raw payload; the field's own value is looked up by
// the descriptor's field name, distinguishing absent, explicit-null, and
// malformed shapes. required is the cast call's required-field list.
//
// Validation problems (required-ness, malformed shapes) surface as a
// field-level error on the Result, never as a Go error. The returned error
// is reserved for fatal contract violations such as an identity that does
// not exist in the prior value (ErrUnmatchedIdentity).
func Cast(d *Descriptor, parent entity.Entity, params entity.Params, required []string, opts ...CastOption) (*Result, error) {
	var cfg castConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	build := d.builder(cfg.build)

	// The empty sentinel skips required checks entirely: every field reads
	// as absent and that is not an error.
	if params.Empty {
		return &Result{Valid: true}, nil
	}

	raw, present := params.Field(d.Field)
	req := contains(required, d.Field)

	if !present {
		if req {
			empty, err := priorEmpty(d, parent)
			if err != nil {
				return nil, err
			}
			if empty {
				return blankResult(d), nil
			}
			// An already-populated relation satisfies required-ness even
			// without resubmission.
		}
		return &Result{Valid: true}, nil
	}

	switch d.Cardinality {
	case One:
		return castOne(d, parent, raw, req, build)
	case Many:
		return castMany(d, parent, raw, build)
	default:
		return nil, fmt.Errorf("descriptor %s.%s: unknown cardinality %q", d.Owner, d.Field, d.Cardinality)
	}
}

// castOne handles the One-cardinality cast for a supplied value.
func castOne(d *Descriptor, parent entity.Entity, raw any, req bool, build BuildFunc) (*Result, error) {
	old, err := asEntity(fieldValue(parent, d.Field))
	if err != nil {
		return nil, err
	}

	v := entity.Classify(raw)
	switch v.Kind {
	case entity.KindNil:
		// Null always means "remove": delete the old entity when present.
		// The net materialized value is absent, so a required field is
		// blank regardless of the prior value.
		rec, changed, err := reconcileOne(d, old, nil, build)
		if err != nil {
			return nil, err
		}
		res := &Result{One: rec, Changed: changed, Valid: true}
		if req {
			res.Valid = false
			res.FieldError = &mutation.FieldError{Field: d.Field, Message: mutation.MsgBlank}
		}
		return res, nil

	case entity.KindMap:
		rec, changed, err := reconcileOne(d, old, v.Map, build)
		if errors.Is(err, ErrInvalidShape) {
			return invalidResult(d), nil
		}
		if err != nil {
			return nil, err
		}
		return &Result{One: rec, Changed: changed, Valid: rec.Valid()}, nil

	default:
		// Scalar or sequence where a single entity was expected.
		return invalidResult(d), nil
	}
}

// castMany handles the Many-cardinality cast for a supplied value. Shape
// problems reject the whole field with a single "is invalid" error before
// any per-element reconciliation runs.
func castMany(d *Descriptor, parent entity.Entity, raw any, build BuildFunc) (*Result, error) {
	old, err := asEntities(fieldValue(parent, d.Field))
	if err != nil {
		return nil, err
	}

	var seq []any
	v := entity.Classify(raw)
	switch v.Kind {
	case entity.KindSequence:
		seq = v.Sequence
	case entity.KindMap:
		seq, err = entity.SortedByPosition(v.Map)
		if err != nil {
			return invalidResult(d), nil
		}
	default:
		return invalidResult(d), nil
	}

	// Raw collection elements must be params maps.
	for _, el := range seq {
		if _, ok := el.(map[string]any); !ok {
			return invalidResult(d), nil
		}
	}

	recs, changed, err := reconcileMany(d, old, seq, build)
	if errors.Is(err, ErrInvalidShape) {
		return invalidResult(d), nil
	}
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

// priorEmpty reports whether the parent's current value for the relation
// field is the canonical "nothing" per cardinality.
func priorEmpty(d *Descriptor, parent entity.Entity) (bool, error) {
	raw := fieldValue(parent, d.Field)
	switch d.Cardinality {
	case Many:
		old, err := asEntities(raw)
		if err != nil {
			return false, err
		}
		return len(old) == 0, nil
	default:
		old, err := asEntity(raw)
		if err != nil {
			return false, err
		}
		return old == nil, nil
	}
}

func fieldValue(parent entity.Entity, field string) any {
	if parent == nil {
		return nil
	}
	return parent[field]
}

func blankResult(d *Descriptor) *Result {
	return &Result{
		Valid:      false,
		FieldError: &mutation.FieldError{Field: d.Field, Message: mutation.MsgBlank},
	}
}

func invalidResult(d *Descriptor) *Result {
	return &Result{
		Valid:      false,
		FieldError: &mutation.FieldError{Field: d.Field, Message: mutation.MsgInvalid},
	}
}
