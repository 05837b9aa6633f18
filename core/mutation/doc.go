// Package mutation defines the mutation record: the structured result of
// diffing an entity against its prior state. A record bundles the prior
// model, the changed fields, collected validation errors, and the action
// (insert, update, delete) the reconciliation engine inferred for it.
//
// # Validity
//
// A record is valid when it carries no errors and, recursively, every
// nested record reachable through its changes is valid. Validity is always
// recomputed by Valid, never stored.
//
// # Action provenance
//
// The engine infers actions from identity matching, but a mutation-building
// function may set the action explicitly, and an explicit choice always
// wins. SetAction records an explicit choice; InferAction records the
// engine's inference and is a no-op once an explicit action exists.
//
// # Applying
//
// Apply materializes the post-mutation entity: changes layered over the
// model, nested records applied recursively, delete records dropped.
package mutation
