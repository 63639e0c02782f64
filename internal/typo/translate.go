package typo

// punctuation marks the AA duplet, which ends an enzyme rather than adding to it.
const punctuation AminoAcid = aminoAcidCount

// dupletTable is indexed by [first][second] base.
//
//	|     | A   | C   | G   | T   |
//	| --- | --- | --- | --- | --- |
//	| A   |     | cut | del | swi |
//	| C   | mvr | mvl | cop | off |
//	| G   | ina | inc | ing | int |
//	| T   | rpy | rpu | lpy | lpu |
var dupletTable = [4][4]AminoAcid{
	A: {A: punctuation, C: Cut, G: Del, T: Swi},
	C: {A: Mvr, C: Mvl, G: Cop, T: Off},
	G: {A: Ina, C: Inc, G: Ing, T: Int},
	T: {A: Rpy, C: Rpu, G: Lpy, T: Lpu},
}

// translateDuplet returns the amino acid a duplet codes for, or false for punctuation.
func translateDuplet(d Duplet) (AminoAcid, bool) {
	aa := dupletTable[d[0]][d[1]]
	return aa, aa != punctuation
}

// Translate reads a strand's duplets into enzymes. Punctuation (AA) ends the current
// enzyme; runs of punctuation never produce empty enzymes.
func Translate(s Strand) []Enzyme {
	var enzymes []Enzyme
	var current []AminoAcid
	for _, d := range s.Duplets() {
		aa, ok := translateDuplet(d)
		if ok {
			current = append(current, aa)
			continue
		}
		if len(current) > 0 {
			enzymes = append(enzymes, Enzyme{aminoAcids: current})
			current = nil
		}
	}

	if len(current) > 0 {
		enzymes = append(enzymes, Enzyme{aminoAcids: current})
	}
	return enzymes
}
