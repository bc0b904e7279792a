package grammar

import (
	"fmt"

	"worldgene/internal/model"
)

// ParseError reports where strict parsing failed and why.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grammar: %s at offset %d", e.Msg, e.Pos)
}

// Parse strictly parses an advanced DNA string. The version tag and TRAITS
// block are required; THRESH and EVO blocks are optional but must be
// well-formed when present. Callers that need the total-decode behavior use
// Decode instead.
func Parse(input string) (Document, error) {
	p := &parser{src: input}

	doc := Document{}
	version, err := p.version()
	if err != nil {
		return Document{}, err
	}
	doc.Version = version

	if err := p.expect(' '); err != nil {
		return Document{}, err
	}
	traits, err := p.traitsBlock()
	if err != nil {
		return Document{}, err
	}
	doc.Traits = traits

	if p.eof() {
		return doc, nil
	}
	if err := p.expect(' '); err != nil {
		return Document{}, err
	}

	if p.lookingAt("THRESH{") {
		names, err := p.threshBlock()
		if err != nil {
			return Document{}, err
		}
		doc.Thresholds = names

		if p.eof() {
			return doc, nil
		}
		if err := p.expect(' '); err != nil {
			return Document{}, err
		}
	}

	entries, err := p.evoBlock()
	if err != nil {
		return Document{}, err
	}
	doc.Evolution = entries

	if !p.eof() {
		return Document{}, p.errorf("trailing input")
	}
	return doc, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.src[p.pos] != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *parser) lookingAt(literal string) bool {
	return len(p.src)-p.pos >= len(literal) && p.src[p.pos:p.pos+len(literal)] == literal
}

func (p *parser) literal(lit string) error {
	if !p.lookingAt(lit) {
		return p.errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_' || c == '.'
}

// digits consumes one or more decimal digits.
func (p *parser) digits() (string, error) {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected digit")
	}
	return p.src[start:p.pos], nil
}

// name consumes a trait or threshold name.
func (p *parser) name() (string, error) {
	start := p.pos
	for !p.eof() && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected name")
	}
	return p.src[start:p.pos], nil
}

// version = "V" digit+ "." digit+
func (p *parser) version() (string, error) {
	if err := p.expect('V'); err != nil {
		return "", err
	}
	start := p.pos
	if _, err := p.digits(); err != nil {
		return "", err
	}
	if err := p.expect('.'); err != nil {
		return "", err
	}
	if _, err := p.digits(); err != nil {
		return "", err
	}
	return p.src[start:p.pos], nil
}

// scored = digit digit
func (p *parser) scored() (model.ScoredValue, error) {
	if len(p.src)-p.pos < 2 || !isDigit(p.src[p.pos]) || !isDigit(p.src[p.pos+1]) {
		return model.ScoredValue{}, p.errorf("expected 2-digit scored value")
	}
	v := model.ScoredValue{
		Prevalence: int(p.src[p.pos] - '0'),
		Intensity:  int(p.src[p.pos+1] - '0'),
	}
	p.pos += 2
	return v, nil
}

func (p *parser) traitsBlock() ([]TraitEntry, error) {
	if err := p.literal("TRAITS{"); err != nil {
		return nil, err
	}
	var entries []TraitEntry
	for {
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.scored()
		if err != nil {
			return nil, err
		}
		entries = append(entries, TraitEntry{Name: name, Value: value})

		if p.peek() == ';' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *parser) threshBlock() ([]string, error) {
	if err := p.literal("THRESH{"); err != nil {
		return nil, err
	}
	var names []string
	for {
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		if p.peek() == ';' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return names, nil
}

func (p *parser) evoBlock() ([]EvolutionEntry, error) {
	if err := p.literal("EVO{"); err != nil {
		return nil, err
	}
	var entries []EvolutionEntry
	for {
		entry, err := p.evoEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		if p.peek() == ';' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return entries, nil
}

// evo-entry = trait-name ":" pattern "[" scored *("," scored) "]"
func (p *parser) evoEntry() (EvolutionEntry, error) {
	trait, err := p.name()
	if err != nil {
		return EvolutionEntry{}, err
	}
	if err := p.expect(':'); err != nil {
		return EvolutionEntry{}, err
	}
	patternName, err := p.name()
	if err != nil {
		return EvolutionEntry{}, err
	}
	pattern := model.EvolutionPattern(patternName)
	if !pattern.Valid() {
		return EvolutionEntry{}, p.errorf("unknown evolution pattern %q", patternName)
	}
	if err := p.expect('['); err != nil {
		return EvolutionEntry{}, err
	}
	var series []model.ScoredValue
	for {
		value, err := p.scored()
		if err != nil {
			return EvolutionEntry{}, err
		}
		series = append(series, value)

		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	if err := p.expect(']'); err != nil {
		return EvolutionEntry{}, err
	}
	return EvolutionEntry{Trait: trait, Pattern: pattern, Series: series}, nil
}
