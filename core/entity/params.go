package entity

// Params is the raw parameter payload for one cast call over a parent
// entity. Field lookup distinguishes "field absent" (no key) from "field
// explicitly null" (key present, nil value).
type Params struct {
	// Values maps field names to their raw payload.
	Values map[string]any

	// Empty marks the sentinel "no parameters supplied at all" cast mode.
	// In this mode every field reads as absent and required-field checks
	// are skipped entirely.
	Empty bool
}

// NewParams wraps a decoded payload map.
func NewParams(values map[string]any) Params {
	return Params{Values: values}
}

// EmptyParams returns the "no parameters supplied at all" sentinel.
func EmptyParams() Params {
	return Params{Empty: true}
}

// Field returns the raw value for a field and whether the field was
// supplied. In Empty mode every field is absent.
func (p Params) Field(name string) (raw any, present bool) {
	if p.Empty || p.Values == nil {
		return nil, false
	}
	raw, present = p.Values[name]
	return raw, present
}
