package typo

import (
	"strings"
)

// AminoAcid is one instruction of an enzyme.
type AminoAcid uint8

const (
	Cut AminoAcid = iota // cut the strand right of the unit
	Del                  // delete the base at the unit
	Swi                  // switch to the complementary strand
	Mvr                  // move one unit right
	Mvl                  // move one unit left
	Cop                  // turn copy mode on
	Off                  // turn copy mode off
	Ina                  // insert A right of the unit
	Inc                  // insert C right of the unit
	Ing                  // insert G right of the unit
	Int                  // insert T right of the unit
	Rpy                  // search right for a pyrimidine
	Rpu                  // search right for a purine
	Lpy                  // search left for a pyrimidine
	Lpu                  // search left for a purine

	aminoAcidCount
)

// Turn is the kink an amino acid puts in a folded enzyme.
type Turn int

const (
	Left     Turn = -1
	Straight Turn = 0
	Right    Turn = 1
)

// aminoAcid is the static description of one instruction.
type aminoAcid struct {
	code string
	turn Turn

	// direction the unit moves in for mvr/mvl and the searches
	dir int

	// base inserted by ina/inc/ing/int
	insert Base

	// class searched for by rpy/rpu/lpy/lpu
	class BaseType
}

var aminoAcids = [aminoAcidCount]aminoAcid{
	Cut: {code: "cut", turn: Straight},
	Del: {code: "del", turn: Straight},
	Swi: {code: "swi", turn: Right},
	Mvr: {code: "mvr", turn: Straight, dir: 1},
	Mvl: {code: "mvl", turn: Straight, dir: -1},
	Cop: {code: "cop", turn: Right},
	Off: {code: "off", turn: Left},
	Ina: {code: "ina", turn: Straight, insert: A},
	Inc: {code: "inc", turn: Right, insert: C},
	Ing: {code: "ing", turn: Right, insert: G},
	Int: {code: "int", turn: Left, insert: T},
	Rpy: {code: "rpy", turn: Right, dir: 1, class: Pyrimidine},
	Rpu: {code: "rpu", turn: Left, dir: 1, class: Purine},
	Lpy: {code: "lpy", turn: Left, dir: -1, class: Pyrimidine},
	Lpu: {code: "lpu", turn: Left, dir: -1, class: Purine},
}

// aminoAcidCodes maps a lower case code back to its amino acid.
var aminoAcidCodes = func() map[string]AminoAcid {
	codes := make(map[string]AminoAcid, aminoAcidCount)
	for i, a := range aminoAcids {
		codes[a.code] = AminoAcid(i)
	}
	return codes
}()

// Turn is the fixed folding turn of the amino acid.
func (a AminoAcid) Turn() Turn {
	return aminoAcids[a].turn
}

func (a AminoAcid) String() string {
	if a < aminoAcidCount {
		return aminoAcids[a].code
	}
	return "???"
}

// Enzyme is an immutable sequence of amino acids.
type Enzyme struct {
	aminoAcids []AminoAcid
}

// NewEnzyme makes an enzyme from a copy of aminoAcids.
func NewEnzyme(aminoAcids ...AminoAcid) Enzyme {
	return Enzyme{aminoAcids: append([]AminoAcid(nil), aminoAcids...)}
}

// ParseEnzyme reads an enzyme literal like "cop-ina-rpy-off", ignoring case.
func ParseEnzyme(s string) (Enzyme, error) {
	codes := strings.Split(strings.TrimSpace(s), "-")
	aas := make([]AminoAcid, 0, len(codes))
	for i, code := range codes {
		aa, ok := aminoAcidCodes[strings.ToLower(strings.TrimSpace(code))]
		if !ok {
			return Enzyme{}, &ParseError{Input: s, Pos: i, Token: code, Err: ErrInvalidAminoAcid}
		}
		aas = append(aas, aa)
	}
	return Enzyme{aminoAcids: aas}, nil
}

// MustParseEnzyme is ParseEnzyme for literals known to be valid. It panics otherwise.
func MustParseEnzyme(s string) Enzyme {
	e, err := ParseEnzyme(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Len is the number of amino acids in the enzyme.
func (e Enzyme) Len() int {
	return len(e.aminoAcids)
}

// At returns the amino acid at index i.
func (e Enzyme) At(i int) AminoAcid {
	return e.aminoAcids[i]
}

// AminoAcids returns a copy of the enzyme's amino acids.
func (e Enzyme) AminoAcids() []AminoAcid {
	return append([]AminoAcid(nil), e.aminoAcids...)
}

// Equal reports whether both enzymes hold the same amino acids in the same order.
func (e Enzyme) Equal(o Enzyme) bool {
	if len(e.aminoAcids) != len(o.aminoAcids) {
		return false
	}
	for i, aa := range e.aminoAcids {
		if o.aminoAcids[i] != aa {
			return false
		}
	}
	return true
}

// String is the canonical form of the enzyme, its codes joined by "-".
func (e Enzyme) String() string {
	codes := make([]string, len(e.aminoAcids))
	for i, aa := range e.aminoAcids {
		codes[i] = aa.String()
	}
	return strings.Join(codes, "-")
}
