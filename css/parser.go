package css

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var errNoWord = errors.New("expected a word")

// Declaration is one `property: value` pair of a declaration block.
type Declaration struct {
	Property string
	Value    string
}

type CSSParser struct {
	style string
	i     int
}

func NewCSSParser(style string) *CSSParser {
	return &CSSParser{
		style: style,
		i:     0,
	}
}

func (p *CSSParser) whitespace() {
	for p.i < len(p.style) && unicode.IsSpace(rune(p.style[p.i])) {
		p.i++
	}
}

func (p *CSSParser) word() (string, error) {
	start := p.i
	for p.i < len(p.style) {
		if unicode.IsLetter(rune(p.style[p.i])) || unicode.IsDigit(rune(p.style[p.i])) || slices.Contains([]rune{'#', '-', '.', '%'}, rune(p.style[p.i])) {
			p.i++
		} else {
			break
		}
	}
	if !(p.i > start) {
		return "", fmt.Errorf("%w at position %d", errNoWord, p.i)
	}
	return p.style[start:p.i], nil
}

func (p *CSSParser) literal(literal rune) error {
	if !(p.i < len(p.style) && rune(p.style[p.i]) == literal) {
		return fmt.Errorf("expected literal '%c' at position %d", literal, p.i)
	}
	p.i++
	return nil
}

// value reads everything up to the next ';' so that values with spaces and
// parentheses ("1px 2px", "rgb(1, 2, 3)") survive intact.
func (p *CSSParser) value() (string, error) {
	start := p.i
	p.ignore_until(';')
	val := strings.TrimSpace(p.style[start:p.i])
	if val == "" {
		return "", fmt.Errorf("expected a value at position %d", start)
	}
	return val, nil
}

func (p *CSSParser) pair() (Declaration, error) {
	prop, err := p.word()
	if err != nil {
		return Declaration{}, err
	}
	p.whitespace()
	if err := p.literal(':'); err != nil {
		return Declaration{}, err
	}
	p.whitespace()
	val, err := p.value()
	if err != nil {
		return Declaration{}, err
	}
	return Declaration{Property: strings.ToLower(prop), Value: val}, nil
}

// Body parses a declaration block in source order. Malformed declarations
// are skipped up to the next ';'.
func (p *CSSParser) Body() []Declaration {
	pairs := make([]Declaration, 0)
	p.whitespace()
	for p.i < len(p.style) {
		decl, err := p.pair()
		if err == nil {
			pairs = append(pairs, decl)
		} else if p.ignore_until(';') == 0 {
			break
		}
		if p.literal(';') != nil {
			break
		}
		p.whitespace()
	}
	return pairs
}

func (p *CSSParser) ignore_until(chars ...rune) rune {
	for p.i < len(p.style) {
		if slices.Contains(chars, rune(p.style[p.i])) {
			return rune(p.style[p.i])
		} else {
			p.i++
		}
	}
	return 0
}

// ParseLength splits a length such as "12px", "2.5pt", "50%" or "auto" into
// its number and unit. A bare number is treated as pixels.
func ParseLength(s string) (float64, string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "auto" {
		return 0, "auto", nil
	}
	unit := "px"
	number := s
	for _, suffix := range []string{"px", "pt", "%"} {
		if strings.HasSuffix(s, suffix) {
			unit = suffix
			number = strings.TrimSuffix(s, suffix)
			break
		}
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse length %q: %w", s, err)
	}
	return v, unit, nil
}
