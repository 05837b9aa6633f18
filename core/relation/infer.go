package relation

import "relcast/core/mutation"

// inferAction computes the action verdict for one reconciled slot from
// old/new presence. Identity mismatches are fatal and rejected by the
// callers before inference runs, so by the time this is called a present
// old and new pair is known to match.
func inferAction(oldExists, newPresent bool) mutation.Action {
	switch {
	case !oldExists && newPresent:
		return mutation.ActionInsert
	case oldExists && !newPresent:
		return mutation.ActionDelete
	case oldExists && newPresent:
		return mutation.ActionUpdate
	default:
		return mutation.ActionNone
	}
}
