// Package grammar implements the advanced DNA text format:
//
//	advanced-dna = version SP traits-block [SP thresh-block] [SP evo-block]
//	version      = "V" digit+ "." digit+
//	traits-block = "TRAITS{" trait-entry *(";" trait-entry) "}"
//	trait-entry  = trait-name ":" digit digit        ; prevalence, intensity
//	thresh-block = "THRESH{" name *(";" name) "}"
//	evo-block    = "EVO{" evo-entry *(";" evo-entry) "}"
//	evo-entry    = trait-name ":" pattern "[" digit digit *("," digit digit) "]"
//
// Parse is the strict entry point and reports positioned errors. Decode keeps
// the external total-decode contract: any input yields a Document, with
// absent sections decoding to empty collections and malformed trait tokens
// defaulting to the 5/5 midpoint (mid-range is the no-information prior here,
// unlike the categorical codec's zero default).
package grammar

import (
	"strings"

	"worldgene/internal/model"
)

// defaultVersion is reported when the input carries no parseable version tag.
const defaultVersion = "1.0"

// TraitEntry is one named scored value from the TRAITS block.
type TraitEntry struct {
	Name  string
	Value model.ScoredValue
}

// EvolutionEntry is one trait's projected series from the EVO block.
type EvolutionEntry struct {
	Trait   string
	Pattern model.EvolutionPattern
	Series  []model.ScoredValue
}

// Document is a parsed advanced DNA string. Entry order follows the input.
type Document struct {
	Version    string
	Traits     []TraitEntry
	Thresholds []string
	Evolution  []EvolutionEntry
}

// Trait returns the named trait entry, if present.
func (d Document) Trait(name string) (model.ScoredValue, bool) {
	for _, e := range d.Traits {
		if e.Name == name {
			return e.Value, true
		}
	}
	return model.ScoredValue{}, false
}

// TraitMap returns the TRAITS block as a scored vector keyed by short name.
func (d Document) TraitMap() model.ScoredVector {
	out := make(model.ScoredVector, len(d.Traits))
	for _, e := range d.Traits {
		out[e.Name] = e.Value
	}
	return out
}

// EvolutionFor returns the evolution entry for a trait, if present.
func (d Document) EvolutionFor(trait string) (EvolutionEntry, bool) {
	for _, e := range d.Evolution {
		if e.Trait == trait {
			return e, true
		}
	}
	return EvolutionEntry{}, false
}

// Decode parses leniently and never fails. Well-formed input takes the strict
// path; anything else is salvaged section by section, dropping entries that
// cannot be made sense of and defaulting malformed scored tokens to 5/5.
func Decode(input string) Document {
	if doc, err := Parse(input); err == nil {
		return doc
	}
	return salvage(input)
}

// salvage recovers whatever sections substring search can find, mirroring the
// tolerance of the strict parser's documented defaults.
func salvage(input string) Document {
	doc := Document{Version: defaultVersion}

	if strings.HasPrefix(input, "V") {
		head := input
		if i := strings.IndexByte(head, ' '); i >= 0 {
			head = head[:i]
		}
		if len(head) > 1 {
			doc.Version = head[1:]
		}
	}

	if body, ok := section(input, "TRAITS{"); ok {
		for _, part := range strings.Split(body, ";") {
			name, value, found := strings.Cut(part, ":")
			if !found || name == "" {
				continue
			}
			doc.Traits = append(doc.Traits, TraitEntry{Name: name, Value: scoredToken(value)})
		}
	}

	if body, ok := section(input, "THRESH{"); ok {
		for _, name := range strings.Split(body, ";") {
			if name != "" {
				doc.Thresholds = append(doc.Thresholds, name)
			}
		}
	}

	if body, ok := section(input, "EVO{"); ok {
		for _, part := range strings.Split(body, ";") {
			entry, ok := salvageEvolution(part)
			if !ok {
				continue
			}
			doc.Evolution = append(doc.Evolution, entry)
		}
	}

	return doc
}

func salvageEvolution(part string) (EvolutionEntry, bool) {
	trait, rest, found := strings.Cut(part, ":")
	if !found || trait == "" {
		return EvolutionEntry{}, false
	}
	pattern, values, found := strings.Cut(rest, "[")
	if !found {
		return EvolutionEntry{}, false
	}
	values, _, found = strings.Cut(values, "]")
	if !found {
		return EvolutionEntry{}, false
	}

	entry := EvolutionEntry{Trait: trait, Pattern: model.EvolutionPattern(pattern)}
	for _, token := range strings.Split(values, ",") {
		entry.Series = append(entry.Series, scoredToken(token))
	}
	return entry, true
}

// section extracts the body between a block opener and its closing brace.
func section(input, opener string) (string, bool) {
	start := strings.Index(input, opener)
	if start < 0 {
		return "", false
	}
	rest := input[start+len(opener):]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// scoredToken reads a 2-digit "PI" token. A malformed token defaults to the
// 5/5 midpoint as a whole; mid-range is the no-information prior here.
func scoredToken(token string) model.ScoredValue {
	if len(token) < 2 || !isDigit(token[0]) || !isDigit(token[1]) {
		return model.ScoredValue{Prevalence: 5, Intensity: 5}
	}
	return model.ScoredValue{
		Prevalence: int(token[0] - '0'),
		Intensity:  int(token[1] - '0'),
	}
}
