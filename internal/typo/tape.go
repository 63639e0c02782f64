package typo

import (
	"slices"
	"strings"
)

// basePair is one position of the working tape. A missing bind base is a tombstone
// left by a deletion; a missing comp base means nothing was copied there.
type basePair struct {
	bind, comp       Base
	hasBind, hasComp bool
}

// swap exchanges the bound and complementary bases.
func (p *basePair) swap() {
	p.bind, p.comp = p.comp, p.bind
	p.hasBind, p.hasComp = p.hasComp, p.hasBind
}

// copyBind synthesizes the complement of the bound base.
func (p *basePair) copyBind() {
	p.comp = p.bind.Complement()
	p.hasComp = true
}

// tape is the mutable state of one rewrite.
type tape struct {
	pairs []basePair

	// unit is the index the enzyme is acting on
	unit int

	// copy is whether copy mode is on
	copy bool
}

func newTape(s Strand, unit int) *tape {
	pairs := make([]basePair, len(s.bases))
	for i, b := range s.bases {
		pairs[i] = basePair{bind: b, hasBind: true}
	}
	return &tape{pairs: pairs, unit: unit}
}

// inBounds reports whether i addresses a pair of the tape.
func (t *tape) inBounds(i int) bool {
	return i >= 0 && i < len(t.pairs)
}

// cut detaches everything right of the unit and returns it.
func (t *tape) cut() []basePair {
	detached := slices.Clone(t.pairs[t.unit+1:])
	t.pairs = t.pairs[:t.unit+1]
	return detached
}

// switchStrand swaps the roles of the bound and complementary strands. The tape is
// reversed since the two run antiparallel.
func (t *tape) switchStrand() {
	for i := range t.pairs {
		t.pairs[i].swap()
	}
	slices.Reverse(t.pairs)
	t.unit = len(t.pairs) - t.unit - 1
}

// insert adds a base right of the unit, paired when in copy mode.
func (t *tape) insert(b Base) {
	p := basePair{bind: b, hasBind: true}
	if t.copy {
		p.copyBind()
	}
	t.pairs = slices.Insert(t.pairs, t.unit+1, p)
}

// move steps the unit by dir. It returns false, leaving the unit where it was, when
// the step would leave the tape or land on a tombstone.
func (t *tape) move(dir int) bool {
	next := t.unit + dir
	if !t.inBounds(next) || !t.pairs[next].hasBind {
		return false
	}
	t.unit = next
	if t.copy {
		t.pairs[t.unit].copyBind()
	}
	return true
}

// strands flushes a run of pairs into strands. Every maximal run of bound bases is a
// strand, and so is every maximal run of complementary bases, read backwards.
func strands(pairs []basePair) []Strand {
	var out []Strand
	var bind, comp []Base

	for _, p := range pairs {
		if p.hasBind {
			bind = append(bind, p.bind)
		} else if len(bind) > 0 {
			out = append(out, Strand{bases: bind})
			bind = nil
		}

		if p.hasComp {
			comp = append(comp, p.comp)
		} else if len(comp) > 0 {
			slices.Reverse(comp)
			out = append(out, Strand{bases: comp})
			comp = nil
		}
	}

	if len(bind) > 0 {
		out = append(out, Strand{bases: bind})
	}
	if len(comp) > 0 {
		slices.Reverse(comp)
		out = append(out, Strand{bases: comp})
	}
	return out
}

// compGlyphs draw complementary bases upside down.
var compGlyphs = [...]string{A: "∀", C: "Ↄ", G: "⅁", T: "⊥"}

// String renders the tape as two rows, the complementary strand above the bound one,
// with the unit marked below.
func (t *tape) String() string {
	var comp, bind, unit strings.Builder
	comp.WriteString("[ ")
	bind.WriteString("[ ")
	unit.WriteString("  ")
	for i, p := range t.pairs {
		if p.hasComp {
			comp.WriteString(compGlyphs[p.comp] + " ")
		} else {
			comp.WriteString("  ")
		}

		if p.hasBind {
			bind.WriteString(p.bind.String() + " ")
		} else {
			bind.WriteString("  ")
		}

		if i == t.unit {
			unit.WriteString("^ ")
		} else {
			unit.WriteString("  ")
		}
	}
	comp.WriteString("]")
	bind.WriteString("]")
	return comp.String() + "\n" + bind.String() + "\n" + strings.TrimRight(unit.String(), " ")
}
