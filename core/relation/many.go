package relation

import (
	"fmt"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// reconcileMany reconciles an ordered collection of nested entities against
// a new desired sequence. Elements of newSeq are entity params maps,
// structured entities, or pre-built mutation records.
//
// Matching is a single sequential pass so the first unmatched identity in
// new-sequence order is the one surfaced. Old entities without an identity
// can never be matched and are always deleted.
//
// Output ordering: old-derived records (updates and deletes) appear in
// old-collection order; genuinely new records are interleaved immediately
// before the matched record they preceded in the new sequence, with
// trailing inserts appended at the end.
func reconcileMany(d *Descriptor, old []entity.Entity, newSeq []any, build BuildFunc) (recs []*mutation.Record, changed bool, err error) {
	idField := d.identityField()

	// Identity index over the old collection. Entities with no identity
	// are excluded: they cannot be matched.
	index := make(map[string]int, len(old))
	for i, o := range old {
		if id, ok := o.Identity(idField); ok {
			index[id] = i
		}
	}

	var (
		matched  = make([]*mutation.Record, len(old))
		consumed = make([]bool, len(old))
		// Inserts anchored to the old index of the first matched element
		// that follows them in the new sequence; endAnchor for inserts
		// with no following match.
		inserts = make(map[int][]*mutation.Record)
		pending []*mutation.Record
	)
	const endAnchor = -1

	for pos, elem := range newSeq {
		id, hasID, err := elementIdentity(d, elem)
		if err != nil {
			return nil, false, fmt.Errorf("field %q element %d: %w", d.Field, pos, err)
		}

		if !hasID {
			rec, err := reconcileElement(d, nil, elem, build)
			if err != nil {
				return nil, false, fmt.Errorf("field %q element %d: %w", d.Field, pos, err)
			}
			pending = append(pending, rec)
			continue
		}

		oi, exists := index[id]
		if !exists {
			return nil, false, fmt.Errorf("%w: %s=%q on field %q", ErrUnmatchedIdentity, idField, id, d.Field)
		}
		if consumed[oi] {
			return nil, false, fmt.Errorf("%w: %s=%q supplied twice on field %q", ErrUnmatchedIdentity, idField, id, d.Field)
		}
		consumed[oi] = true

		rec, err := reconcileElement(d, old[oi], elem, build)
		if err != nil {
			return nil, false, fmt.Errorf("field %q element %d: %w", d.Field, pos, err)
		}
		matched[oi] = rec

		if len(pending) > 0 {
			inserts[oi] = append(inserts[oi], pending...)
			pending = nil
		}
	}
	if len(pending) > 0 {
		inserts[endAnchor] = append(inserts[endAnchor], pending...)
	}

	// Unconsumed old entities were never matched: delete them.
	deletes := 0
	for i := range old {
		if !consumed[i] {
			matched[i] = deleteRecord(old[i])
			deletes++
		}
	}

	// Merge: old order, with inserts emitted just before the matched
	// record they anchor to.
	insertCount := 0
	recs = make([]*mutation.Record, 0, len(old)+len(newSeq))
	for i := range old {
		for _, rec := range inserts[i] {
			recs = append(recs, rec)
			insertCount++
		}
		recs = append(recs, matched[i])
	}
	for _, rec := range inserts[endAnchor] {
		recs = append(recs, rec)
		insertCount++
	}

	changed = insertCount > 0 || deletes > 0
	if !changed {
		for _, rec := range recs {
			if recordChanged(rec) {
				changed = true
				break
			}
		}
	}
	return recs, changed, nil
}
