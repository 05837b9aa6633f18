package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"relcast/core/entity"
)

// TestValid_Recursive tests that validity folds through nested records.
func TestValid_Recursive(t *testing.T) {
	parent := New(entity.Entity{"id": 1})
	assert.True(t, parent.Valid())

	// A nested One record with an error invalidates the parent
	child := New(entity.Entity{"id": 2})
	child.AddError("title", MsgBlank)
	parent.PutChange("cover", child)
	assert.False(t, parent.Valid())

	// Clearing the nested error restores validity
	child.Errors = nil
	assert.True(t, parent.Valid())

	// A nested Many sequence with one invalid element invalidates too
	good := New(nil)
	bad := New(nil)
	bad.AddError("title", MsgBlank)
	parent.PutChange("tracks", []*Record{good, bad})
	assert.False(t, parent.Valid())
}

// TestValid_OwnErrors tests that local errors invalidate the record.
func TestValid_OwnErrors(t *testing.T) {
	rec := New(nil)
	assert.True(t, rec.Valid())

	rec.AddError("title", MsgBlank)
	assert.False(t, rec.Valid())
	assert.Equal(t, []FieldError{{Field: "title", Message: MsgBlank}}, rec.Errors)
}

// TestActionProvenance tests that an explicit action always wins over
// engine inference.
func TestActionProvenance(t *testing.T) {
	rec := New(nil)
	assert.Equal(t, ActionNone, rec.Action())
	assert.False(t, rec.ActionExplicit())

	// Inference applies while no explicit choice exists
	rec.InferAction(ActionUpdate)
	assert.Equal(t, ActionUpdate, rec.Action())
	assert.False(t, rec.ActionExplicit())

	// Explicit choice overrides and sticks
	rec.SetAction(ActionInsert)
	assert.Equal(t, ActionInsert, rec.Action())
	assert.True(t, rec.ActionExplicit())

	rec.InferAction(ActionDelete)
	assert.Equal(t, ActionInsert, rec.Action())
}

// TestGetField tests effective-value lookup with model fallback.
func TestGetField(t *testing.T) {
	rec := New(entity.Entity{"title": "old", "duration": 100})
	rec.PutChange("title", "new")

	assert.Equal(t, "new", rec.GetField("title"))
	assert.Equal(t, 100, rec.GetField("duration"))
	assert.Nil(t, rec.GetField("genre"))

	// No model at all
	fresh := New(nil)
	assert.Nil(t, fresh.GetField("title"))
}

// TestApply tests materialization of changes over the model.
func TestApply(t *testing.T) {
	rec := New(entity.Entity{"id": 1, "title": "old", "duration": 100})
	rec.PutChange("title", "new")
	rec.InferAction(ActionUpdate)

	out := rec.Apply()
	assert.Equal(t, entity.Entity{"id": 1, "title": "new", "duration": 100}, out)

	// The model is untouched
	assert.Equal(t, "old", rec.Model["title"])
}

// TestApply_Delete tests that delete records materialize to nil.
func TestApply_Delete(t *testing.T) {
	rec := New(entity.Entity{"id": 1})
	rec.InferAction(ActionDelete)
	assert.Nil(t, rec.Apply())
}

// TestApply_Nested tests recursive materialization of relation changes.
func TestApply_Nested(t *testing.T) {
	// One: a nested delete materializes to an explicit nil value
	cover := New(entity.Entity{"id": 9, "url": "x"})
	cover.InferAction(ActionDelete)

	// Many: deletes are dropped, order preserved
	keep := New(entity.Entity{"id": 1, "title": "a"})
	keep.InferAction(ActionUpdate)
	keep.PutChange("title", "a2")
	drop := New(entity.Entity{"id": 2, "title": "b"})
	drop.InferAction(ActionDelete)
	add := New(nil)
	add.InferAction(ActionInsert)
	add.PutChange("title", "c")

	parent := New(entity.Entity{"id": 5, "name": "album"})
	parent.PutChange("cover", cover)
	parent.PutChange("tracks", []*Record{keep, drop, add})

	out := parent.Apply()
	assert.Nil(t, out["cover"])
	assert.Equal(t, []entity.Entity{
		{"id": 1, "title": "a2"},
		{"title": "c"},
	}, out["tracks"])
	assert.Equal(t, "album", out["name"])
}
