// Package codec implements the categorical DNA wire format: one 2-digit
// lowercase hex token per schema component, in schema order. Decode is total
// over arbitrary input; malformed strings resolve to in-schema vectors via
// documented pad/truncate/default rules instead of errors.
package codec

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

const tokenWidth = 2

// Encode serializes the vector into its DNA string. The vector is assumed to
// conform to the schema: every component present, every value in its domain.
// Vectors only come from GenerateRandom, Decode or the genetic operators, so
// a missing value indicates an internal bug; it encodes as index 0.
func Encode(s *schema.Schema, v model.Vector) string {
	var b strings.Builder
	b.Grow(s.Len() * tokenWidth)
	for _, c := range s.Components {
		idx := c.Index(v[c.Name])
		if idx < 0 {
			idx = 0
		}
		fmt.Fprintf(&b, "%02x", idx)
	}
	return b.String()
}

// Decode parses a DNA string into a vector. It is total: wrong-length input
// is right-padded with '0' or truncated, an unparseable token defaults to
// index 0, and every parsed index is reduced modulo the domain size. Any
// input yields a fully populated, in-schema vector.
func Decode(s *schema.Schema, dna string) model.Vector {
	expected := s.Len() * tokenWidth
	if len(dna) < expected {
		dna += strings.Repeat("0", expected-len(dna))
	} else if len(dna) > expected {
		dna = dna[:expected]
	}

	v := make(model.Vector, s.Len())
	for i, c := range s.Components {
		token := dna[i*tokenWidth : (i+1)*tokenWidth]
		idx, err := strconv.ParseUint(token, 16, 16)
		if err != nil {
			idx = 0
		}
		v[c.Name] = c.Domain[int(idx)%len(c.Domain)]
	}
	s.Apply(v)
	return v
}

// GenerateRandom draws one uniformly random value per component,
// independently across components.
func GenerateRandom(s *schema.Schema, rng *rand.Rand) model.Vector {
	v := make(model.Vector, s.Len())
	for _, c := range s.Components {
		v[c.Name] = c.Domain[rng.Intn(len(c.Domain))]
	}
	s.Apply(v)
	return v
}
