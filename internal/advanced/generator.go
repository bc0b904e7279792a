// Package advanced implements the scored world DNA generator: bounded
// prevalence/intensity trait vectors with threshold detection, chain
// reactions, trend analysis and evolution-pattern projection, serialized into
// the grammar handled by internal/grammar.
package advanced

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"worldgene/internal/evolution"
	"worldgene/internal/model"
	"worldgene/internal/schema"
)

// Version is the advanced DNA format version emitted by Generate.
const Version = "1.6"

// Trend classification cutoffs: a trait is rising when both dimensions sit
// near their ceilings, falling when both sit near their floors.
const (
	risingPrevalence  = 7
	risingIntensity   = 4
	fallingPrevalence = 3
	fallingIntensity  = 2
)

// Generator produces advanced world DNA. All randomness flows through the
// injected Rand so generation is reproducible under a fixed seed.
type Generator struct {
	Rand *rand.Rand
	Log  *slog.Logger
}

// New returns a generator using the given random source. A nil logger
// discards output.
func New(rng *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{Rand: rng, Log: log}
}

// GenerateBase draws an independent uniform scored value for every trait in
// the category table.
func (g *Generator) GenerateBase() model.ScoredVector {
	traits := make(model.ScoredVector)
	for _, key := range schema.TraitKeys() {
		traits[key] = model.ScoredValue{
			Prevalence: model.PrevalenceMin + g.Rand.Intn(model.PrevalenceMax-model.PrevalenceMin+1),
			Intensity:  model.IntensityMin + g.Rand.Intn(model.IntensityMax-model.IntensityMin+1),
		}
	}
	return traits
}

// ApplyBias adds the per-trait deltas to a copy of the vector, clamped to
// range. Traits absent from the bias map are untouched. Bias runs before
// threshold evaluation so callers can deliberately push a vector across a
// threshold.
func (g *Generator) ApplyBias(traits model.ScoredVector, bias map[string]schema.Bias) model.ScoredVector {
	out := traits.Clone()
	for trait, b := range bias {
		value, ok := out[trait]
		if !ok {
			continue
		}
		out[trait] = model.ScoredValue{
			Prevalence: model.ClampPrevalence(value.Prevalence + b.Prevalence),
			Intensity:  model.ClampIntensity(value.Intensity + b.Intensity),
		}
	}
	return out
}

// CheckThresholds returns the names of thresholds whose every condition
// holds, in threshold-table order. A trait missing from the vector fails its
// condition. The vector is never modified.
func (g *Generator) CheckThresholds(traits model.ScoredVector) []string {
	var met []string
	for _, threshold := range schema.Thresholds() {
		satisfied := true
		for _, cond := range threshold.Conditions {
			value, ok := traits[cond.Trait]
			if !ok || value.Prevalence < cond.MinPrevalence {
				satisfied = false
				break
			}
		}
		if satisfied {
			met = append(met, threshold.Name)
		}
	}
	return met
}

// ApplyChainReactions applies, to a copy of the vector, every chain reaction
// whose trigger threshold was met. Effects adjust intensity only, clamped per
// write; prevalence is never touched. Reactions run once, in table order,
// with no re-trigger pass.
func (g *Generator) ApplyChainReactions(traits model.ScoredVector, met []string) model.ScoredVector {
	triggered := make(map[string]bool, len(met))
	for _, name := range met {
		triggered[name] = true
	}

	out := traits.Clone()
	for _, reaction := range schema.ChainReactions() {
		if !triggered[reaction.Trigger] {
			continue
		}
		g.Log.Debug("chain reaction fired", "reaction", reaction.Name, "trigger", reaction.Trigger)
		for _, effect := range reaction.Effects {
			value, ok := out[effect.Trait]
			if !ok {
				continue
			}
			value.Intensity = model.ClampIntensity(value.Intensity + effect.IntensityDelta)
			out[effect.Trait] = value
		}
	}
	return out
}

// IdentifyTrends classifies each trait as rising or falling from its current
// value alone. Traits in neither band are omitted. Result lists follow
// category-table order.
func (g *Generator) IdentifyTrends(traits model.ScoredVector) map[model.Trend][]string {
	trends := map[model.Trend][]string{
		model.TrendRising:  nil,
		model.TrendFalling: nil,
	}
	for _, key := range schema.TraitKeys() {
		value, ok := traits[key]
		if !ok {
			continue
		}
		switch {
		case value.Prevalence >= risingPrevalence && value.Intensity >= risingIntensity:
			trends[model.TrendRising] = append(trends[model.TrendRising], key)
		case value.Prevalence <= fallingPrevalence && value.Intensity <= fallingIntensity:
			trends[model.TrendFalling] = append(trends[model.TrendFalling], key)
		}
	}
	return trends
}

// IdentifyPatterns assigns an evolution pattern per trait from its scored
// value, then lets trends override: rising traits accelerate and falling
// traits decline regardless of the base assignment. Traits in no band get no
// pattern.
func (g *Generator) IdentifyPatterns(traits model.ScoredVector, trends map[model.Trend][]string) map[string]model.EvolutionPattern {
	patterns := make(map[string]model.EvolutionPattern)
	for key, value := range traits {
		switch {
		case value.Prevalence >= 7 && value.Intensity >= 4:
			patterns[key] = model.PatternAccelerating
		case value.Prevalence <= 3 && value.Intensity <= 2:
			patterns[key] = model.PatternDeclining
		case value.Prevalence >= 4 && value.Prevalence <= 6 && value.Intensity >= 4:
			patterns[key] = model.PatternUnstable
		case value.Prevalence >= 4 && value.Prevalence <= 6 && value.Intensity <= 2:
			patterns[key] = model.PatternStabilizing
		}
	}

	for _, trait := range trends[model.TrendRising] {
		if _, ok := patterns[trait]; ok {
			patterns[trait] = model.PatternAccelerating
		}
	}
	for _, trait := range trends[model.TrendFalling] {
		if _, ok := patterns[trait]; ok {
			patterns[trait] = model.PatternDeclining
		}
	}
	return patterns
}

// Generate produces a complete advanced DNA string: base generation, bias,
// threshold evaluation, chain reactions, trend and pattern analysis, and
// evolution projection for accelerating/declining traits. It returns the
// serialized string together with the final scored vector.
//
// Only ACCELERATING and DECLINING traits are projected into the EVO block;
// UNSTABLE and STABILIZING traits evolve implicitly but stay off the wire in
// this format version.
func (g *Generator) Generate(bias map[string]schema.Bias) (string, model.ScoredVector) {
	traits := g.GenerateBase()
	if len(bias) > 0 {
		traits = g.ApplyBias(traits, bias)
	}

	met := g.CheckThresholds(traits)
	traits = g.ApplyChainReactions(traits, met)

	trends := g.IdentifyTrends(traits)
	patterns := g.IdentifyPatterns(traits, trends)

	dna := g.serialize(traits, met, patterns)
	g.Log.Info("generated advanced dna", "thresholds", len(met), "patterns", len(patterns))
	return dna, traits
}

func (g *Generator) serialize(traits model.ScoredVector, met []string, patterns map[string]model.EvolutionPattern) string {
	parts := []string{"V" + Version}

	var traitParts []string
	for _, key := range schema.TraitKeys() {
		value := traits[key]
		traitParts = append(traitParts, fmt.Sprintf("%s:%d%d", schema.ShortName(key), value.Prevalence, value.Intensity))
	}
	parts = append(parts, "TRAITS{"+strings.Join(traitParts, ";")+"}")

	if len(met) > 0 {
		parts = append(parts, "THRESH{"+strings.Join(met, ";")+"}")
	}

	var evoParts []string
	for _, key := range schema.TraitKeys() {
		pattern, ok := patterns[key]
		if !ok || (pattern != model.PatternAccelerating && pattern != model.PatternDeclining) {
			continue
		}
		series := evolution.ProjectPeriods(traits[key], pattern, g.Rand)
		values := make([]string, 0, len(series))
		for _, v := range series {
			values = append(values, fmt.Sprintf("%d%d", v.Prevalence, v.Intensity))
		}
		evoParts = append(evoParts, fmt.Sprintf("%s:%s[%s]", schema.ShortName(key), pattern, strings.Join(values, ",")))
	}
	if len(evoParts) > 0 {
		parts = append(parts, "EVO{"+strings.Join(evoParts, ";")+"}")
	}

	return strings.Join(parts, " ")
}
