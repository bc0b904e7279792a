package advanced

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"worldgene/internal/grammar"
	"worldgene/internal/model"
	"worldgene/internal/schema"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), nil)
}

func TestGenerateBaseBounds(t *testing.T) {
	g := newTestGenerator(1)

	traits := g.GenerateBase()
	if len(traits) != len(schema.TraitKeys()) {
		t.Fatalf("got %d traits, want %d", len(traits), len(schema.TraitKeys()))
	}
	for key, value := range traits {
		if value.Prevalence < model.PrevalenceMin || value.Prevalence > model.PrevalenceMax {
			t.Fatalf("%s: prevalence %d out of range", key, value.Prevalence)
		}
		if value.Intensity < model.IntensityMin || value.Intensity > model.IntensityMax {
			t.Fatalf("%s: intensity %d out of range", key, value.Intensity)
		}
	}
}

func TestApplyBiasClampsAndCopies(t *testing.T) {
	g := newTestGenerator(1)

	traits := model.ScoredVector{
		"magical.prevalence": {Prevalence: 8, Intensity: 4},
		"magical.intensity":  {Prevalence: 2, Intensity: 1},
	}
	biased := g.ApplyBias(traits, map[string]schema.Bias{
		"magical.prevalence": {Prevalence: 5, Intensity: 3},
		"magical.intensity":  {Prevalence: -4, Intensity: -2},
		"cultural.trade":     {Prevalence: 1, Intensity: 1}, // absent, ignored
	})

	if got := biased["magical.prevalence"]; got != (model.ScoredValue{Prevalence: 9, Intensity: 5}) {
		t.Fatalf("bias over ceiling: got %v", got)
	}
	if got := biased["magical.intensity"]; got != (model.ScoredValue{Prevalence: 1, Intensity: 1}) {
		t.Fatalf("bias under floor: got %v", got)
	}
	if traits["magical.prevalence"] != (model.ScoredValue{Prevalence: 8, Intensity: 4}) {
		t.Fatalf("input vector was modified: %v", traits["magical.prevalence"])
	}
}

func TestCheckThresholds(t *testing.T) {
	g := newTestGenerator(1)

	traits := model.ScoredVector{
		"magical.intensity":  {Prevalence: 4, Intensity: 1},
		"magical.prevalence": {Prevalence: 8, Intensity: 1},
	}
	met := g.CheckThresholds(traits)
	if !reflect.DeepEqual(met, []string{"high_magic"}) {
		t.Fatalf("got %v, want [high_magic]", met)
	}

	// One condition below its minimum fails the whole threshold.
	traits["magical.prevalence"] = model.ScoredValue{Prevalence: 6, Intensity: 1}
	if met := g.CheckThresholds(traits); len(met) != 0 {
		t.Fatalf("got %v, want none", met)
	}
}

func TestCheckThresholdsMissingTraitFails(t *testing.T) {
	g := newTestGenerator(1)

	// Only one of high_magic's two condition traits is present.
	traits := model.ScoredVector{
		"magical.intensity": {Prevalence: 9, Intensity: 5},
	}
	if met := g.CheckThresholds(traits); len(met) != 0 {
		t.Fatalf("got %v, want none", met)
	}
}

func TestCheckThresholdsIsPure(t *testing.T) {
	g := newTestGenerator(1)

	traits := g.GenerateBase()
	snapshot := traits.Clone()

	first := g.CheckThresholds(traits)
	second := g.CheckThresholds(traits)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated checks disagree: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(traits, snapshot) {
		t.Fatal("check modified its input vector")
	}
}

func TestApplyChainReactionsIntensityOnly(t *testing.T) {
	g := newTestGenerator(1)

	traits := g.GenerateBase()
	before := traits.Clone()

	out := g.ApplyChainReactions(traits, []string{"high_magic", "unstable"})
	for key, value := range out {
		if value.Prevalence != before[key].Prevalence {
			t.Fatalf("%s: prevalence changed %d -> %d", key, before[key].Prevalence, value.Prevalence)
		}
		if value.Intensity < model.IntensityMin || value.Intensity > model.IntensityMax {
			t.Fatalf("%s: intensity %d out of range", key, value.Intensity)
		}
	}
	if !reflect.DeepEqual(traits, before) {
		t.Fatal("input vector was modified")
	}
}

func TestApplyChainReactionsClampsAtFloor(t *testing.T) {
	g := newTestGenerator(1)

	traits := model.ScoredVector{
		"political.stability": {Prevalence: 5, Intensity: 1},
		"cultural.society":    {Prevalence: 5, Intensity: 3},
		"magical.artifacts":   {Prevalence: 5, Intensity: 4},
	}
	out := g.ApplyChainReactions(traits, []string{"high_magic"})

	if got := out["political.stability"]; got.Intensity != 1 {
		t.Fatalf("stability intensity: got %d, want clamp at 1", got.Intensity)
	}
	if got := out["cultural.society"]; got.Intensity != 4 {
		t.Fatalf("society intensity: got %d, want 4", got.Intensity)
	}
	if got := out["magical.artifacts"]; got.Intensity != 5 {
		t.Fatalf("artifacts intensity: got %d, want clamp at 5", got.Intensity)
	}
}

func TestApplyChainReactionsUntriggeredIsNoop(t *testing.T) {
	g := newTestGenerator(1)

	traits := g.GenerateBase()
	out := g.ApplyChainReactions(traits, nil)
	if !reflect.DeepEqual(out, traits) {
		t.Fatal("no met thresholds must leave the vector unchanged")
	}
}

func TestIdentifyTrends(t *testing.T) {
	g := newTestGenerator(1)

	traits := model.ScoredVector{
		"physical.climate":   {Prevalence: 7, Intensity: 4}, // rising
		"physical.terrain":   {Prevalence: 3, Intensity: 2}, // falling
		"physical.resources": {Prevalence: 5, Intensity: 3}, // neither
		"physical.hazards":   {Prevalence: 7, Intensity: 3}, // high prevalence alone is not enough
	}
	trends := g.IdentifyTrends(traits)
	if !reflect.DeepEqual(trends[model.TrendRising], []string{"physical.climate"}) {
		t.Fatalf("rising: got %v", trends[model.TrendRising])
	}
	if !reflect.DeepEqual(trends[model.TrendFalling], []string{"physical.terrain"}) {
		t.Fatalf("falling: got %v", trends[model.TrendFalling])
	}
}

func TestIdentifyPatterns(t *testing.T) {
	g := newTestGenerator(1)

	traits := model.ScoredVector{
		"physical.climate":   {Prevalence: 8, Intensity: 5}, // accelerating
		"physical.terrain":   {Prevalence: 2, Intensity: 1}, // declining
		"physical.resources": {Prevalence: 5, Intensity: 4}, // unstable
		"physical.hazards":   {Prevalence: 5, Intensity: 2}, // stabilizing
		"cultural.society":   {Prevalence: 8, Intensity: 3}, // no band
	}
	patterns := g.IdentifyPatterns(traits, g.IdentifyTrends(traits))

	want := map[string]model.EvolutionPattern{
		"physical.climate":   model.PatternAccelerating,
		"physical.terrain":   model.PatternDeclining,
		"physical.resources": model.PatternUnstable,
		"physical.hazards":   model.PatternStabilizing,
	}
	if !reflect.DeepEqual(patterns, want) {
		t.Fatalf("got %v, want %v", patterns, want)
	}
}

func TestGenerateSerializesParseableDNA(t *testing.T) {
	g := newTestGenerator(99)

	dna, traits := g.Generate(nil)
	if !strings.HasPrefix(dna, "V"+Version+" TRAITS{") {
		t.Fatalf("unexpected prefix: %s", dna)
	}

	doc, err := grammar.Parse(dna)
	if err != nil {
		t.Fatalf("generated dna does not parse: %v", err)
	}
	if doc.Version != Version {
		t.Fatalf("version: got %s, want %s", doc.Version, Version)
	}
	if len(doc.Traits) != len(schema.TraitKeys()) {
		t.Fatalf("got %d serialized traits, want %d", len(doc.Traits), len(schema.TraitKeys()))
	}

	// Serialized short names line up with the final vector.
	for _, entry := range doc.Traits {
		found := false
		for key, value := range traits {
			if schema.ShortName(key) == entry.Name {
				found = true
				if entry.Value != value {
					t.Fatalf("%s: serialized %v, vector holds %v", entry.Name, entry.Value, value)
				}
			}
		}
		if !found {
			t.Fatalf("serialized unknown trait %s", entry.Name)
		}
	}

	// EVO entries carry only major patterns with full 4-value series.
	for _, entry := range doc.Evolution {
		if entry.Pattern != model.PatternAccelerating && entry.Pattern != model.PatternDeclining {
			t.Fatalf("%s: pattern %s must not be serialized", entry.Trait, entry.Pattern)
		}
		if len(entry.Series) != 4 {
			t.Fatalf("%s: got %d series values, want 4", entry.Trait, len(entry.Series))
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	dnaA, traitsA := newTestGenerator(7).Generate(nil)
	dnaB, traitsB := newTestGenerator(7).Generate(nil)
	if dnaA != dnaB {
		t.Fatalf("same seed produced different dna:\n%s\n%s", dnaA, dnaB)
	}
	if !reflect.DeepEqual(traitsA, traitsB) {
		t.Fatal("same seed produced different vectors")
	}
}

func TestGenerateBiasCanTriggerThreshold(t *testing.T) {
	// Max positive bias on the high_magic condition traits forces their
	// prevalence to the ceiling, so the threshold must be met.
	bias := map[string]schema.Bias{
		"magical.intensity":  {Prevalence: model.PrevalenceMax, Intensity: 0},
		"magical.prevalence": {Prevalence: model.PrevalenceMax, Intensity: 0},
	}
	dna, _ := newTestGenerator(3).Generate(bias)

	doc := grammar.Decode(dna)
	found := false
	for _, name := range doc.Thresholds {
		if name == "high_magic" {
			found = true
		}
	}
	if !found {
		t.Fatalf("high_magic threshold not met despite max bias: %s", dna)
	}
}

func TestGenerateBoundsAlwaysHold(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		_, traits := newTestGenerator(seed).Generate(map[string]schema.Bias{
			"political.conflict": {Prevalence: 9, Intensity: 9},
			"cultural.trade":     {Prevalence: -9, Intensity: -9},
		})
		for key, value := range traits {
			if value != value.Clamp() {
				t.Fatalf("seed %d: %s out of range: %v", seed, key, value)
			}
		}
	}
}
