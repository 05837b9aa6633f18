// Package catalog is a concrete demo domain for the reconciliation engine:
// album entities owning an ordered Many relation of tracks and a One
// relation of a cover image.
//
// It provides the relation schema and the mutation-building functions
// (changesets) the engine invokes per nested entity. The CLI uses this
// schema to reconcile JSON documents end to end.
package catalog
