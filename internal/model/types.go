package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Bounds for the two dimensions of a scored trait value.
const (
	PrevalenceMin = 1
	PrevalenceMax = 9
	IntensityMin  = 1
	IntensityMax  = 5
)

// ScoredValue is a trait value in the advanced codec: how widespread the trait
// is (prevalence, 1-9) and how strongly it manifests (intensity, 1-5).
type ScoredValue struct {
	Prevalence int `json:"prevalence"`
	Intensity  int `json:"intensity"`
}

// Clamp returns the value with both dimensions forced into range.
func (v ScoredValue) Clamp() ScoredValue {
	return ScoredValue{
		Prevalence: ClampPrevalence(v.Prevalence),
		Intensity:  ClampIntensity(v.Intensity),
	}
}

func ClampPrevalence(p int) int {
	if p < PrevalenceMin {
		return PrevalenceMin
	}
	if p > PrevalenceMax {
		return PrevalenceMax
	}
	return p
}

func ClampIntensity(i int) int {
	if i < IntensityMin {
		return IntensityMin
	}
	if i > IntensityMax {
		return IntensityMax
	}
	return i
}

// Vector is a categorical trait vector: component name to one value drawn from
// that component's domain.
type Vector map[string]string

func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// ScoredVector maps qualified trait names ("category.trait") to scored values.
type ScoredVector map[string]ScoredValue

func (v ScoredVector) Clone() ScoredVector {
	out := make(ScoredVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// TraitPair is one (name, value) entry of a categorical vector in schema
// order, for consumers that need a stable ordering (prompt templating).
type TraitPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EvolutionPattern governs how a scored trait changes across time periods.
type EvolutionPattern string

const (
	PatternAccelerating EvolutionPattern = "ACCELERATING"
	PatternDeclining    EvolutionPattern = "DECLINING"
	PatternUnstable     EvolutionPattern = "UNSTABLE"
	PatternStabilizing  EvolutionPattern = "STABILIZING"
)

func (p EvolutionPattern) Valid() bool {
	switch p {
	case PatternAccelerating, PatternDeclining, PatternUnstable, PatternStabilizing:
		return true
	}
	return false
}

// Trend classifies a scored trait's current direction.
type Trend string

const (
	TrendRising  Trend = "RISING"
	TrendFalling Trend = "FALLING"
)

// TimePeriod is one of the four fixed projection points for trait evolution.
type TimePeriod string

const (
	PeriodPast    TimePeriod = "PAST"
	PeriodPresent TimePeriod = "PRESENT"
	PeriodNear    TimePeriod = "NEAR"
	PeriodFar     TimePeriod = "FAR"
)

// TimePeriods returns the projection points in order. An evolution series
// always carries exactly one value per period.
func TimePeriods() []TimePeriod {
	return []TimePeriod{PeriodPast, PeriodPresent, PeriodNear, PeriodFar}
}

// WorldRecord is the persisted form of a categorical world DNA.
type WorldRecord struct {
	VersionedRecord
	ID     string `json:"id"`
	DNA    string `json:"dna_string"`
	Traits Vector `json:"traits"`
}

// CharacterRecord is the persisted form of a character personality DNA.
type CharacterRecord struct {
	VersionedRecord
	ID     string `json:"id"`
	DNA    string `json:"dna_string"`
	Traits Vector `json:"traits"`
}

// AdvancedRecord is the persisted form of an advanced world DNA, keeping the
// serialized grammar string alongside its decoded scored traits.
type AdvancedRecord struct {
	VersionedRecord
	ID     string       `json:"id"`
	DNA    string       `json:"dna_string"`
	Traits ScoredVector `json:"traits"`
}
