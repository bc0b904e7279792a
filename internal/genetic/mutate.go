// Package genetic implements mutation and crossover over both trait vector
// families. Operators are value-semantic: inputs are never modified, every
// call returns a fresh vector, and schema-level invariants are re-applied to
// the result.
package genetic

import (
	"math/rand"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

// Mutate resamples each component independently with probability rate,
// choosing uniformly among the domain values excluding the current one. A
// single-value domain cannot mutate. rate 0 returns an identical vector.
func Mutate(s *schema.Schema, v model.Vector, rate float64, rng *rand.Rand) model.Vector {
	out := v.Clone()
	for _, c := range s.Components {
		if rng.Float64() >= rate {
			continue
		}
		if len(c.Domain) <= 1 {
			continue
		}
		current := c.Index(out[c.Name])
		if current < 0 {
			out[c.Name] = c.Domain[rng.Intn(len(c.Domain))]
			continue
		}
		// Draw from the domain minus the current value.
		idx := rng.Intn(len(c.Domain) - 1)
		if idx >= current {
			idx++
		}
		out[c.Name] = c.Domain[idx]
	}
	s.Apply(out)
	return out
}

// MutateScored resamples each trait's scored value independently with
// probability rate, mirroring base generation for that trait. Both dimensions
// are redrawn uniformly within bounds.
func MutateScored(v model.ScoredVector, rate float64, rng *rand.Rand) model.ScoredVector {
	out := v.Clone()
	for _, key := range schema.TraitKeys() {
		if _, ok := out[key]; !ok {
			continue
		}
		if rng.Float64() >= rate {
			continue
		}
		out[key] = model.ScoredValue{
			Prevalence: model.PrevalenceMin + rng.Intn(model.PrevalenceMax-model.PrevalenceMin+1),
			Intensity:  model.IntensityMin + rng.Intn(model.IntensityMax-model.IntensityMin+1),
		}
	}
	return out
}
