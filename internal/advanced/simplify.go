package advanced

import (
	"worldgene/internal/grammar"
	"worldgene/internal/model"
	"worldgene/internal/schema"
)

// Simplify buckets an advanced DNA string down to a categorical world vector.
// Only terrain, climate, resources, conflict and hazards carry information
// across; every other world component takes the first value of its domain.
// The conversion is lossy and does not round-trip.
func Simplify(advancedDNA string) model.Vector {
	doc := grammar.Decode(advancedDNA)
	world := schema.World()

	v := make(model.Vector, world.Len())
	for _, c := range world.Components {
		v[c.Name] = c.Domain[0]
	}
	// Mapped components fall back to neutral values when the trait is absent
	// from the DNA rather than to their domain heads.
	v["terrain"] = "mixed"
	v["climate"] = "temperate"
	v["resources"] = "balanced"
	v["conflict"] = "peace"
	v["hazards"] = "safe"

	for _, c := range world.Components {
		value, ok := doc.Trait(c.Name)
		if !ok {
			continue
		}
		switch c.Name {
		case "terrain", "climate":
			// Spread across the whole domain by prevalence.
			v[c.Name] = c.Domain[value.Prevalence%len(c.Domain)]
		case "resources":
			v[c.Name] = bucketResources(value.Prevalence)
		case "conflict":
			v[c.Name] = bucketConflict(value.Prevalence, value.Intensity)
		case "hazards":
			v[c.Name] = bucketHazards(value.Prevalence)
		}
	}

	world.Apply(v)
	return v
}

// bucketResources: 7+ abundant, 4-6 balanced, below scarce.
func bucketResources(prevalence int) string {
	switch {
	case prevalence >= 7:
		return "abundant"
	case prevalence >= 4:
		return "balanced"
	default:
		return "scarce"
	}
}

// bucketConflict: widespread and intense means open war, then de-escalating
// bands down to peace.
func bucketConflict(prevalence, intensity int) string {
	switch {
	case prevalence >= 7 && intensity >= 4:
		return "open_war"
	case prevalence >= 5:
		return "skirmishes"
	case prevalence >= 3:
		return "cold_war"
	default:
		return "peace"
	}
}

// bucketHazards: 7+ deadly, 4-6 dangerous, below safe.
func bucketHazards(prevalence int) string {
	switch {
	case prevalence >= 7:
		return "deadly"
	case prevalence >= 4:
		return "dangerous"
	default:
		return "safe"
	}
}
