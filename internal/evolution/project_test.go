package evolution

import (
	"math/rand"
	"testing"

	"worldgene/internal/model"
)

func TestProjectSeriesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	value := model.ScoredValue{Prevalence: 5, Intensity: 3}

	for _, pattern := range []model.EvolutionPattern{
		model.PatternAccelerating, model.PatternDeclining,
		model.PatternUnstable, model.PatternStabilizing,
	} {
		series := ProjectPeriods(value, pattern, rng)
		if len(series) != 4 {
			t.Fatalf("%s: got %d values, want 4", pattern, len(series))
		}
		if series[0] != value {
			t.Fatalf("%s: index 0 is %v, want the pre-step value %v", pattern, series[0], value)
		}
	}
}

func TestProjectAcceleratingDeltas(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	series := Project(model.ScoredValue{Prevalence: 3, Intensity: 2}, model.PatternAccelerating, 3, rng)
	want := []model.ScoredValue{
		{Prevalence: 3, Intensity: 2},
		{Prevalence: 5, Intensity: 3},
		{Prevalence: 7, Intensity: 4},
		{Prevalence: 9, Intensity: 5},
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, series[i], want[i])
		}
	}
}

func TestProjectClampsAtBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	series := Project(model.ScoredValue{Prevalence: 9, Intensity: 5}, model.PatternAccelerating, 3, rng)
	for i, v := range series {
		if v.Prevalence != 9 || v.Intensity != 5 {
			t.Fatalf("step %d: got %v, want ceiling to hold", i, v)
		}
	}

	series = Project(model.ScoredValue{Prevalence: 1, Intensity: 1}, model.PatternDeclining, 3, rng)
	for i, v := range series {
		if v.Prevalence != 1 || v.Intensity != 1 {
			t.Fatalf("step %d: got %v, want floor to hold", i, v)
		}
	}
}

func TestProjectUnstableStaysInRange(t *testing.T) {
	value := model.ScoredValue{Prevalence: 5, Intensity: 4}
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, v := range Project(value, model.PatternUnstable, 3, rng) {
			if v.Prevalence < model.PrevalenceMin || v.Prevalence > model.PrevalenceMax {
				t.Fatalf("seed %d: prevalence %d out of range", seed, v.Prevalence)
			}
			if v.Intensity < model.IntensityMin || v.Intensity > model.IntensityMax {
				t.Fatalf("seed %d: intensity %d out of range", seed, v.Intensity)
			}
		}
	}
}

func TestProjectDeterministicForSeed(t *testing.T) {
	value := model.ScoredValue{Prevalence: 5, Intensity: 4}

	a := Project(value, model.PatternUnstable, 3, rand.New(rand.NewSource(42)))
	b := Project(value, model.PatternUnstable, 3, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d: %v != %v under identical seeds", i, a[i], b[i])
		}
	}
}

func TestProjectStabilizingLowersIntensityOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	series := Project(model.ScoredValue{Prevalence: 5, Intensity: 5}, model.PatternStabilizing, 3, rng)
	want := []model.ScoredValue{
		{Prevalence: 5, Intensity: 5},
		{Prevalence: 5, Intensity: 4},
		{Prevalence: 5, Intensity: 3},
		{Prevalence: 5, Intensity: 2},
	}
	for i := range want {
		if series[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, series[i], want[i])
		}
	}
}
