package genetic

import (
	"math/rand"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

// Crossover builds a child vector by inheriting each component from either
// parent with equal probability. Every child value equals the corresponding
// value in one of the parents; schema invariants are re-applied afterwards.
func Crossover(s *schema.Schema, a, b model.Vector, rng *rand.Rand) model.Vector {
	child := make(model.Vector, s.Len())
	for _, c := range s.Components {
		if rng.Float64() < 0.5 {
			child[c.Name] = a[c.Name]
		} else {
			child[c.Name] = b[c.Name]
		}
	}
	s.Apply(child)
	return child
}

// CrossoverScored builds a child scored vector by picking each trait's value
// from either parent with equal probability. Traits present in only one
// parent inherit from that parent.
func CrossoverScored(a, b model.ScoredVector, rng *rand.Rand) model.ScoredVector {
	child := make(model.ScoredVector)
	for _, key := range schema.TraitKeys() {
		av, aok := a[key]
		bv, bok := b[key]
		switch {
		case aok && bok:
			if rng.Float64() < 0.5 {
				child[key] = av
			} else {
				child[key] = bv
			}
		case aok:
			child[key] = av
		case bok:
			child[key] = bv
		}
	}
	return child
}
