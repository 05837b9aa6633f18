// Package relation implements the nested-entity reconciliation and cast
// engine: it turns untrusted parameter data into validated mutation records
// for the nested entities of a parent, and computes the insert/update/delete
// actions needed to reconcile a prior collection against a desired one by
// identity matching.
//
// # Architecture
//
// The engine consists of five parts:
//
//  1. Descriptor: static per-field metadata (cardinality, identity field,
//     mutation-building function). Pure data, defined at schema time.
//
//  2. Action inference: a pure function deciding insert/update/delete for
//     one slot from old/new presence. A custom builder's explicit action
//     always wins over inference.
//
//  3. Reconcilers: the One reconciler handles a single nested slot; the
//     Many reconciler walks old and new ordered collections, matches by
//     identity, and emits an ordered record list (old-derived records in
//     old order, inserts interleaved at their new-sequence position).
//
//  4. Cast pipeline: the per-field entry point consumed by the parent cast
//     step. It classifies the raw payload shape, enforces required-ness,
//     dispatches by cardinality, and folds results into the parent record.
//
//  5. Apply: materializes accepted records back into entity values,
//     dropping deletes.
//
// # Error classes
//
// Recoverable validation errors live inside mutation records as
// (field, message) pairs and never halt a call. Fatal shape and identity
// violations (ErrInvalidShape, ErrUnmatchedIdentity) are returned as Go
// errors: they indicate a client-contract violation, not user input.
// During Cast, shape problems short of the identity case degrade to a
// single "is invalid" error on the relation field instead.
//
// Every operation is a pure function over immutable inputs; independent
// relation fields may be reconciled concurrently.
package relation
