// Package typo is the typogenetics interpreter: bases and strands, the translation of
// strands into enzymes, enzyme folding and binding, and the rewriting of strands by
// enzymes.
package typo

import "fmt"

// Base is one of the four letters a strand is made of.
type Base uint8

const (
	A Base = iota
	C
	G
	T
)

// Bases lists every base in alphabetical order.
var Bases = [...]Base{A, C, G, T}

// BaseType is the chemical class of a base.
type BaseType uint8

const (
	// Purine bases are A and G
	Purine BaseType = iota

	// Pyrimidine bases are C and T
	Pyrimidine
)

var baseLetters = [...]byte{A: 'A', C: 'C', G: 'G', T: 'T'}

var complements = [...]Base{A: T, C: G, G: C, T: A}

// Complement returns the base this one pairs with (A-T, C-G).
func (b Base) Complement() Base {
	return complements[b]
}

// Type returns whether the base is a purine or a pyrimidine.
func (b Base) Type() BaseType {
	if b == A || b == G {
		return Purine
	}
	return Pyrimidine
}

// Is reports whether the base belongs to the class t.
func (b Base) Is(t BaseType) bool {
	return b.Type() == t
}

func (b Base) String() string {
	if int(b) < len(baseLetters) {
		return string(baseLetters[b])
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

func (t BaseType) String() string {
	if t == Purine {
		return "purine"
	}
	return "pyrimidine"
}

// baseFromLetter maps an upper or lower case letter to its base.
func baseFromLetter(r rune) (Base, bool) {
	switch r {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	}
	return 0, false
}
