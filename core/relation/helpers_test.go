package relation

import (
	"relcast/core/entity"
	"relcast/core/mutation"
)

// trackBuilder is the mutation-building function used across the engine
// tests: title is required, everything else passes through the diff.
func trackBuilder(model entity.Entity, params map[string]any) *mutation.Record {
	rec := mutation.New(model)
	if raw, supplied := params["title"]; supplied {
		if raw == nil {
			if model != nil && model["title"] != nil {
				rec.PutChange("title", nil)
			}
		} else if model == nil || model["title"] != raw {
			rec.PutChange("title", raw)
		}
	}
	if v := rec.GetField("title"); v == nil || v == "" {
		rec.AddError("title", mutation.MsgBlank)
	}
	return rec
}

func tracksDesc() *Descriptor {
	return &Descriptor{
		Field:       "tracks",
		Cardinality: Many,
		Owner:       "album",
		Related:     "track",
		OnCast:      trackBuilder,
	}
}

func coverDesc() *Descriptor {
	return &Descriptor{
		Field:       "cover",
		Cardinality: One,
		Owner:       "album",
		Related:     "cover",
		OnCast:      trackBuilder,
	}
}

// oldTracks is the prior collection used by the reconciliation scenarios.
func oldTracks() []entity.Entity {
	return []entity.Entity{
		{"id": 1, "title": "hello"},
		{"id": 2, "title": "unknown"},
		{"id": 3, "title": "other"},
	}
}

func actionsOf(recs []*mutation.Record) []mutation.Action {
	out := make([]mutation.Action, len(recs))
	for i, rec := range recs {
		out[i] = rec.Action()
	}
	return out
}
