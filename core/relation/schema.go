package relation

import "sort"

// Schema is the metadata accessor consumed by the cast pipeline: given a
// parent type and field name, it returns the relation descriptor. Queried
// once per cast/change call per field.
type Schema interface {
	// Relation returns the descriptor declared for owner.field, or false
	// when the owner does not declare such a relation.
	Relation(owner, field string) (*Descriptor, bool)
}

// SchemaMap is a map-backed Schema populated at configuration time.
type SchemaMap struct {
	relations map[string]map[string]*Descriptor
}

// NewSchemaMap creates an empty schema.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{relations: make(map[string]map[string]*Descriptor)}
}

// Register adds a descriptor under its owner and field, filling in default
// strategy and identity field. Registering the same owner.field twice
// replaces the earlier descriptor.
func (s *SchemaMap) Register(d *Descriptor) *SchemaMap {
	if d.Strategy == "" {
		d.Strategy = StrategyReplace
	}
	if d.IdentityField == "" {
		d.IdentityField = DefaultIdentityField
	}
	owner := s.relations[d.Owner]
	if owner == nil {
		owner = make(map[string]*Descriptor)
		s.relations[d.Owner] = owner
	}
	owner[d.Field] = d
	return s
}

// Relation implements Schema.
func (s *SchemaMap) Relation(owner, field string) (*Descriptor, bool) {
	d, ok := s.relations[owner][field]
	return d, ok
}

// Fields returns the relation field names declared for an owner, in
// registration-independent (sorted) order.
func (s *SchemaMap) Fields(owner string) []string {
	m := s.relations[owner]
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
