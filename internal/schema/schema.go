package schema

import (
	"worldgene/internal/model"
)

// Component is one categorical trait: a name and its ordered domain of
// permissible values. Domain order is part of the wire format and must not be
// reordered without a format version bump.
type Component struct {
	Name   string
	Domain []string
}

// Index returns the position of value in the component's domain, or -1 when
// the value is not part of the domain.
func (c Component) Index(value string) int {
	for i, v := range c.Domain {
		if v == value {
			return i
		}
	}
	return -1
}

// Schema is an ordered set of categorical components plus an optional
// vector-level normalization rule.
type Schema struct {
	Name       string
	Components []Component

	// Normalize enforces vector-level invariants after generation, mutation
	// and crossover. Nil means the schema has no extra rule.
	Normalize func(model.Vector)
}

func (s *Schema) Len() int {
	return len(s.Components)
}

// Component looks a component up by name.
func (s *Schema) Component(name string) (Component, bool) {
	for _, c := range s.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// Apply runs the schema's normalization rule on the vector, if any.
func (s *Schema) Apply(v model.Vector) {
	if s.Normalize != nil {
		s.Normalize(v)
	}
}

// Ordered returns the vector's traits as (name, value) pairs in schema order,
// for consumers that need a stable ordering without reaching into the schema.
func (s *Schema) Ordered(v model.Vector) []model.TraitPair {
	out := make([]model.TraitPair, 0, len(s.Components))
	for _, c := range s.Components {
		out = append(out, model.TraitPair{Name: c.Name, Value: v[c.Name]})
	}
	return out
}
