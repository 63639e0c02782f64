package typo

import (
	"strings"
	"unicode"
)

// Strand is an immutable sequence of bases.
type Strand struct {
	bases []Base
}

// Duplet is an adjacent pair of bases, the unit of translation.
type Duplet [2]Base

// NewStrand makes a strand from a copy of bases.
func NewStrand(bases ...Base) Strand {
	return Strand{bases: append([]Base(nil), bases...)}
}

// ParseStrand reads a strand literal like "CG GA TA". Letters may be upper or lower
// case and whitespace is ignored.
func ParseStrand(s string) (Strand, error) {
	bases := make([]Base, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b, ok := baseFromLetter(r)
		if !ok {
			return Strand{}, &ParseError{Input: s, Pos: i, Token: string(r), Err: ErrInvalidBase}
		}
		bases = append(bases, b)
	}
	return Strand{bases: bases}, nil
}

// MustParseStrand is ParseStrand for literals known to be valid. It panics otherwise.
func MustParseStrand(s string) Strand {
	strand, err := ParseStrand(s)
	if err != nil {
		panic(err)
	}
	return strand
}

// Len is the number of bases in the strand.
func (s Strand) Len() int {
	return len(s.bases)
}

// At returns the base at index i.
func (s Strand) At(i int) Base {
	return s.bases[i]
}

// Bases returns a copy of the strand's bases.
func (s Strand) Bases() []Base {
	return append([]Base(nil), s.bases...)
}

// Duplets splits the strand into non-overlapping pairs from the left. A trailing odd
// base is not part of any duplet.
func (s Strand) Duplets() []Duplet {
	duplets := make([]Duplet, 0, len(s.bases)/2)
	for i := 0; i+1 < len(s.bases); i += 2 {
		duplets = append(duplets, Duplet{s.bases[i], s.bases[i+1]})
	}
	return duplets
}

// Equal reports whether both strands hold the same bases in the same order.
func (s Strand) Equal(o Strand) bool {
	if len(s.bases) != len(o.bases) {
		return false
	}
	for i, b := range s.bases {
		if o.bases[i] != b {
			return false
		}
	}
	return true
}

// String is the canonical form of the strand, its letters concatenated.
func (s Strand) String() string {
	var sb strings.Builder
	sb.Grow(len(s.bases))
	for _, b := range s.bases {
		sb.WriteByte(baseLetters[b])
	}
	return sb.String()
}

func (d Duplet) String() string {
	return d[0].String() + d[1].String()
}
