// Package evolution projects scored trait values across the fixed time
// periods according to an assigned evolution pattern.
package evolution

import (
	"math/rand"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

// Project applies the pattern's step deltas to the value `steps` times,
// clamping after every step. The returned series has steps+1 entries; index 0
// is the pre-step value. UNSTABLE adds an independent uniform jitter in
// {-1,0,1} to each dimension at each step before clamping.
func Project(value model.ScoredValue, pattern model.EvolutionPattern, steps int, rng *rand.Rand) []model.ScoredValue {
	step := schema.PatternSteps()[pattern]

	series := make([]model.ScoredValue, 0, steps+1)
	series = append(series, value)

	current := value
	for i := 0; i < steps; i++ {
		next := model.ScoredValue{
			Prevalence: model.ClampPrevalence(current.Prevalence + step.Prevalence),
			Intensity:  model.ClampIntensity(current.Intensity + step.Intensity),
		}
		if pattern == model.PatternUnstable {
			next.Prevalence = model.ClampPrevalence(next.Prevalence + rng.Intn(3) - 1)
			next.Intensity = model.ClampIntensity(next.Intensity + rng.Intn(3) - 1)
		}
		series = append(series, next)
		current = next
	}
	return series
}

// ProjectPeriods projects across the four fixed time periods: one step per
// period past the first. The series always has exactly one value per period.
func ProjectPeriods(value model.ScoredValue, pattern model.EvolutionPattern, rng *rand.Rand) []model.ScoredValue {
	return Project(value, pattern, len(model.TimePeriods())-1, rng)
}
