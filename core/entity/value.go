package entity

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// Kind identifies the shape of a raw parameter value.
type Kind string

const (
	// KindNil is an explicit null value.
	KindNil Kind = "nil"
	// KindMap is a string-keyed map (entity params, or a positional map).
	KindMap Kind = "map"
	// KindSequence is an ordered collection of elements.
	KindSequence Kind = "sequence"
	// KindScalar is any other value (string, number, bool, ...).
	KindScalar Kind = "scalar"
)

// Value is the classified form of a raw parameter payload. Exactly one of
// Map/Sequence/Raw is meaningful depending on Kind.
type Value struct {
	// Kind is the detected shape.
	Kind Kind

	// Map holds the value when Kind is KindMap.
	Map map[string]any

	// Sequence holds the elements when Kind is KindSequence.
	Sequence []any

	// Raw holds the original value when Kind is KindScalar.
	Raw any
}

// Classify detects the shape of a raw parameter value. It accepts the
// concrete types a JSON decoder produces plus the engine's own Entity and
// entity-slice types, so structured callers classify the same way as raw
// ones.
func Classify(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: KindNil}
	case map[string]any:
		return Value{Kind: KindMap, Map: v}
	case Entity:
		return Value{Kind: KindMap, Map: map[string]any(v)}
	case []any:
		return Value{Kind: KindSequence, Sequence: v}
	case []map[string]any:
		seq := make([]any, len(v))
		for i, m := range v {
			seq[i] = m
		}
		return Value{Kind: KindSequence, Sequence: seq}
	case []Entity:
		seq := make([]any, len(v))
		for i, e := range v {
			seq[i] = e
		}
		return Value{Kind: KindSequence, Sequence: seq}
	default:
		return Value{Kind: KindScalar, Raw: raw}
	}
}

// SortedByPosition normalizes a positional map (elements keyed by their
// position, e.g. {"0": ..., "1": ...}) into an ordered sequence sorted by
// ascending position. Every key must parse as an integer; a key that does
// not means the map is not positional and the value is malformed.
func SortedByPosition(m map[string]any) ([]any, error) {
	type slot struct {
		pos int
		val any
	}
	slots := make([]slot, 0, len(m))
	for k, v := range m {
		pos, err := cast.ToIntE(k)
		if err != nil {
			return nil, fmt.Errorf("non-positional key %q in collection map", k)
		}
		slots = append(slots, slot{pos: pos, val: v})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].pos < slots[j].pos })

	seq := make([]any, len(slots))
	for i, s := range slots {
		seq[i] = s.val
	}
	return seq, nil
}
