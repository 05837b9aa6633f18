package catalog

import (
	"github.com/spf13/cast"

	"relcast/core/entity"
	"relcast/core/mutation"
)

// TrackChangeset diffs a track against raw parameters. Title is required;
// duration is an optional integer.
func TrackChangeset(model entity.Entity, params map[string]any) *mutation.Record {
	rec := mutation.New(model)
	castString(rec, params, "title", true)
	castInt(rec, params, "duration")
	return rec
}

// CoverChangeset diffs a cover against raw parameters. URL is required.
func CoverChangeset(model entity.Entity, params map[string]any) *mutation.Record {
	rec := mutation.New(model)
	castString(rec, params, "url", true)
	return rec
}

// castString casts a string field from params onto the record. A supplied
// null clears the field. When required, the effective value after casting
// must be non-blank.
func castString(rec *mutation.Record, params map[string]any, field string, required bool) {
	raw, supplied := params[field]
	if supplied {
		if raw == nil {
			if rec.Model != nil && rec.Model[field] != nil {
				rec.PutChange(field, nil)
			}
		} else if s, err := cast.ToStringE(raw); err != nil {
			rec.AddError(field, mutation.MsgInvalid)
			return
		} else if rec.Model == nil || cast.ToString(rec.Model[field]) != s {
			rec.PutChange(field, s)
		}
	}
	if required {
		rec.Required = append(rec.Required, field)
		if v := rec.GetField(field); v == nil || cast.ToString(v) == "" {
			rec.AddError(field, mutation.MsgBlank)
		}
	}
}

// castInt casts an optional integer field from params onto the record.
func castInt(rec *mutation.Record, params map[string]any, field string) {
	raw, supplied := params[field]
	if !supplied {
		return
	}
	if raw == nil {
		if rec.Model != nil && rec.Model[field] != nil {
			rec.PutChange(field, nil)
		}
		return
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		rec.AddError(field, mutation.MsgInvalid)
		return
	}
	if rec.Model == nil || cast.ToInt(rec.Model[field]) != n || rec.Model[field] == nil {
		rec.PutChange(field, n)
	}
}
