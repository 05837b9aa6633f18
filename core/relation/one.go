package relation

import (
	"fmt"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// reconcileOne reconciles a single nested slot. newVal is an entity params
// map, a structured entity, a pre-built mutation record, or nil for
// absent/explicit-null. old is the prior entity or nil.
//
// Required-ness is not enforced here; the surrounding cast step owns it.
func reconcileOne(d *Descriptor, old entity.Entity, newVal any, build BuildFunc) (rec *mutation.Record, changed bool, err error) {
	if newVal == nil {
		if old == nil {
			// Nothing on either side: a no-op, not an error.
			return nil, false, nil
		}
		return deleteRecord(old), true, nil
	}

	newID, hasID, err := elementIdentity(d, newVal)
	if err != nil {
		return nil, false, err
	}
	if hasID {
		oldID, oldHas := old.Identity(d.identityField())
		if !oldHas || oldID != newID {
			return nil, false, fmt.Errorf("%w: %s=%q on field %q", ErrUnmatchedIdentity, d.identityField(), newID, d.Field)
		}
	}

	rec, err = reconcileElement(d, old, newVal, build)
	if err != nil {
		return nil, false, err
	}
	return rec, recordChanged(rec), nil
}

// recordChanged reports whether a record represents an observable change.
// A true no-op reconciliation (update with no changes and no errors) is
// reported as unchanged so the parent can skip listing the field.
func recordChanged(rec *mutation.Record) bool {
	switch rec.Action() {
	case mutation.ActionInsert, mutation.ActionDelete:
		return true
	}
	return len(rec.Changes) > 0 || len(rec.Errors) > 0
}
