package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// TestChange_ApplyIdempotent tests that a change built from identical old
// and new collections reports no change and applies back to the input.
func TestChange_ApplyIdempotent(t *testing.T) {
	d := tracksDesc()
	x := oldTracks()

	res, err := Change(d, x, x)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.True(t, res.Valid)

	applied := ApplyMany(d, res.Many)
	assert.Equal(t, x, applied)
}

// TestChange_ManyMixed tests a structured reconciliation with an insert, a
// delete, and an update.
func TestChange_ManyMixed(t *testing.T) {
	d := tracksDesc()
	newVal := []entity.Entity{
		{"title": "brand new"},
		{"id": 3, "title": "renamed"},
	}

	res, err := Change(d, newVal, oldTracks())
	require.NoError(t, err)
	require.Len(t, res.Many, 4)

	// Old-derived records in old order: delete(1), delete(2), update(3);
	// the insert precedes the matched entry it preceded in the new
	// sequence.
	assert.Equal(t, []mutation.Action{
		mutation.ActionDelete,
		mutation.ActionDelete,
		mutation.ActionInsert,
		mutation.ActionUpdate,
	}, actionsOf(res.Many))

	applied := ApplyMany(d, res.Many)
	assert.Equal(t, []entity.Entity{
		{"title": "brand new"},
		{"id": 3, "title": "renamed"},
	}, applied)
	assert.True(t, res.Changed)
}

// TestChange_OneDelete tests removing a One relation with a nil new value.
func TestChange_OneDelete(t *testing.T) {
	d := coverDesc()
	old := entity.Entity{"id": 7, "title": "art"}

	res, err := Change(d, nil, old)
	require.NoError(t, err)
	require.NotNil(t, res.One)
	assert.Equal(t, mutation.ActionDelete, res.One.Action())
	assert.True(t, res.Changed)

	assert.Nil(t, Apply(d, res.One))
}

// TestChange_PrebuiltRecords tests passing pre-built mutation records
// through a structured change.
func TestChange_PrebuiltRecords(t *testing.T) {
	d := tracksDesc()
	old := oldTracks()

	pre := mutation.New(old[1])
	pre.PutChange("title", "override")

	res, err := Change(d, []*mutation.Record{pre}, old)
	require.NoError(t, err)
	require.Len(t, res.Many, 3)

	assert.Equal(t, []mutation.Action{
		mutation.ActionDelete,
		mutation.ActionUpdate,
		mutation.ActionDelete,
	}, actionsOf(res.Many))
	assert.Equal(t, "override", res.Many[1].Changes["title"])
}

// TestChange_MalformedShapeFatal tests that malformed structured values
// abort instead of degrading to a field error.
func TestChange_MalformedShapeFatal(t *testing.T) {
	d := tracksDesc()
	old := oldTracks()

	// Scalar where a collection was expected
	_, err := Change(d, "oops", old)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Nil where a collection was expected
	_, err = Change(d, nil, old)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Collection containing a scalar element
	_, err = Change(d, []any{"oops"}, old)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// Scalar where an entity was expected
	_, err = Change(coverDesc(), 42, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

// TestChange_UnmatchedIdentityFatal tests the unmatched-identity condition
// on the structured path.
func TestChange_UnmatchedIdentityFatal(t *testing.T) {
	d := tracksDesc()

	_, err := Change(d, []entity.Entity{{"id": 42, "title": "ghost"}}, oldTracks())
	assert.ErrorIs(t, err, ErrUnmatchedIdentity)

	_, err = Change(coverDesc(), entity.Entity{"id": 42}, entity.Entity{"id": 7})
	assert.ErrorIs(t, err, ErrUnmatchedIdentity)
}

// TestChange_PositionalMap tests structured positional-map normalization.
func TestChange_PositionalMap(t *testing.T) {
	d := tracksDesc()
	newVal := map[string]any{
		"0": map[string]any{"id": 1, "title": "hello"},
		"1": map[string]any{"id": 2, "title": "renamed"},
		"2": map[string]any{"id": 3, "title": "other"},
	}

	res, err := Change(d, newVal, oldTracks())
	require.NoError(t, err)
	require.Len(t, res.Many, 3)
	assert.Equal(t, "renamed", res.Many[1].Changes["title"])
}

// TestEmpty tests the canonical "nothing" value per cardinality.
func TestEmpty(t *testing.T) {
	assert.Nil(t, Empty(coverDesc()))
	assert.Equal(t, []entity.Entity{}, Empty(tracksDesc()))
}

// TestApplyMany_DropsDeletes tests order-preserving materialization.
func TestApplyMany_DropsDeletes(t *testing.T) {
	d := tracksDesc()

	keep := mutation.New(entity.Entity{"id": 1, "title": "a"})
	keep.InferAction(mutation.ActionUpdate)
	drop := mutation.New(entity.Entity{"id": 2, "title": "b"})
	drop.InferAction(mutation.ActionDelete)
	add := mutation.New(nil)
	add.InferAction(mutation.ActionInsert)
	add.PutChange("title", "c")

	applied := ApplyMany(d, []*mutation.Record{keep, drop, add})
	assert.Equal(t, []entity.Entity{
		{"id": 1, "title": "a"},
		{"title": "c"},
	}, applied)
}
