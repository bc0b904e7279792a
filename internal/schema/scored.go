package schema

import (
	"strings"

	"worldgene/internal/model"
)

// Category groups scored traits. Qualified trait names are
// "<category>.<trait>" in lower case.
type Category struct {
	Name   string
	Traits []string
}

// Categories returns the scored trait table in declaration order.
func Categories() []Category {
	return []Category{
		{Name: "PHYSICAL", Traits: []string{"climate", "terrain", "resources", "hazards"}},
		{Name: "CULTURAL", Traits: []string{"society", "technology", "religion", "trade"}},
		{Name: "POLITICAL", Traits: []string{"government", "conflict", "diplomacy", "stability"}},
		{Name: "MAGICAL", Traits: []string{"intensity", "prevalence", "schools", "artifacts"}},
	}
}

// TraitKeys returns every qualified scored trait name in category order.
// Short names (the part after the dot) are unique across categories and are
// what the wire format carries.
func TraitKeys() []string {
	var keys []string
	for _, cat := range Categories() {
		for _, trait := range cat.Traits {
			keys = append(keys, strings.ToLower(cat.Name)+"."+trait)
		}
	}
	return keys
}

// ShortName strips the category qualifier from a trait key.
func ShortName(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// Condition is one clause of a threshold predicate: the trait's prevalence
// must be at least MinPrevalence. A trait missing from the vector fails the
// clause.
type Condition struct {
	Trait         string
	MinPrevalence int
}

// Threshold is a named predicate over the scored vector; it is met when every
// condition holds. Thresholds never modify the vector.
type Threshold struct {
	Name       string
	Conditions []Condition
}

// Thresholds returns the critical threshold table in declaration order.
func Thresholds() []Threshold {
	return []Threshold{
		{Name: "high_magic", Conditions: []Condition{
			{Trait: "magical.intensity", MinPrevalence: 4},
			{Trait: "magical.prevalence", MinPrevalence: 7},
		}},
		{Name: "unstable", Conditions: []Condition{
			{Trait: "political.conflict", MinPrevalence: 4},
			{Trait: "political.stability", MinPrevalence: 2},
		}},
		{Name: "advanced", Conditions: []Condition{
			{Trait: "cultural.technology", MinPrevalence: 7},
			{Trait: "cultural.society", MinPrevalence: 6},
		}},
	}
}

// Effect is one additive chain-reaction modifier. Only intensity is ever
// touched; prevalence is off limits to chain reactions.
type Effect struct {
	Trait          string
	IntensityDelta int
}

// ChainReaction fires when its trigger threshold is met and applies its
// effects once, clamped per write. Reactions are applied in declaration
// order; there is no cascading re-trigger pass.
type ChainReaction struct {
	Name    string
	Trigger string
	Effects []Effect
}

// ChainReactions returns the chain reaction table in declaration order.
func ChainReactions() []ChainReaction {
	return []ChainReaction{
		{Name: "magical_crisis", Trigger: "high_magic", Effects: []Effect{
			{Trait: "political.stability", IntensityDelta: -2},
			{Trait: "cultural.society", IntensityDelta: 1},
			{Trait: "magical.artifacts", IntensityDelta: 2},
		}},
		{Name: "societal_collapse", Trigger: "unstable", Effects: []Effect{
			{Trait: "cultural.trade", IntensityDelta: -2},
			{Trait: "political.government", IntensityDelta: -1},
			{Trait: "cultural.society", IntensityDelta: -2},
		}},
	}
}

// PatternStep is the per-step delta an evolution pattern applies to a scored
// value.
type PatternStep struct {
	Prevalence int
	Intensity  int
}

// PatternSteps maps each evolution pattern to its step deltas. UNSTABLE
// additionally gets a random jitter at projection time.
func PatternSteps() map[model.EvolutionPattern]PatternStep {
	return map[model.EvolutionPattern]PatternStep{
		model.PatternAccelerating: {Prevalence: 2, Intensity: 1},
		model.PatternDeclining:    {Prevalence: -1, Intensity: -1},
		model.PatternUnstable:     {Prevalence: 0, Intensity: 2},
		model.PatternStabilizing:  {Prevalence: 0, Intensity: -1},
	}
}

// Bias is an additive pre-threshold adjustment applied to selected traits
// before any threshold evaluation, so a caller can deliberately steer a
// generation toward (or away from) a threshold.
type Bias struct {
	Prevalence int
	Intensity  int
}
