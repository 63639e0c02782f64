// Package search explores the strands reachable from a starting strand, either by
// letting its enzymes act on each other at random or by editing it at random and
// keeping the edits that preserve what its enzyme does.
package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gregorybchris/typogenetics/internal/typo"
)

// Rand is the source of randomness for edits and searches. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n)
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1)
	Float64() float64
}

// ErrEmptyStrand is returned when mutating or deleting from a strand with no bases.
var ErrEmptyStrand = errors.New("strand has no bases")

// EditType is a kind of random edit.
type EditType uint8

const (
	Mutate EditType = iota
	Insert
	Delete
)

func (t EditType) String() string {
	switch t {
	case Mutate:
		return "mutate"
	case Insert:
		return "insert"
	default:
		return "delete"
	}
}

// the chance of each edit type, checked in this order
const (
	ProbMutate = 0.80
	ProbInsert = 0.10
	ProbDelete = 0.10
)

// Editor makes random point edits to strands.
type Editor struct {
	rng Rand
}

// NewEditor returns an Editor drawing from rng.
func NewEditor(rng Rand) *Editor {
	return &Editor{rng: rng}
}

// SelectEditType draws one uniform value and walks the cumulative edit probabilities.
func (e *Editor) SelectEditType() EditType {
	r := e.rng.Float64()
	for _, p := range []struct {
		t    EditType
		prob float64
	}{
		{Mutate, ProbMutate},
		{Insert, ProbInsert},
		{Delete, ProbDelete},
	} {
		if r <= p.prob {
			return p.t
		}
		r -= p.prob
	}
	return Delete
}

// Edit applies one random edit to the strand. Mutating or deleting requires at least
// one base.
func (e *Editor) Edit(s typo.Strand) (typo.Strand, error) {
	switch t := e.SelectEditType(); t {
	case Mutate:
		return e.Mutate(s)
	case Insert:
		return e.Insert(s), nil
	case Delete:
		return e.Delete(s)
	default:
		return typo.Strand{}, fmt.Errorf("unknown edit type %d", t)
	}
}

// Mutate swaps a random base for a different one.
func (e *Editor) Mutate(s typo.Strand) (typo.Strand, error) {
	if s.Len() == 0 {
		return typo.Strand{}, fmt.Errorf("failed to mutate: %w", ErrEmptyStrand)
	}

	bases := s.Bases()
	i := e.rng.Intn(len(bases))
	old := bases[i]
	for bases[i] == old {
		bases[i] = typo.Bases[e.rng.Intn(len(typo.Bases))]
	}
	return typo.NewStrand(bases...), nil
}

// Insert adds a random base anywhere in the strand, including either end.
func (e *Editor) Insert(s typo.Strand) typo.Strand {
	i := e.rng.Intn(s.Len() + 1)
	b := typo.Bases[e.rng.Intn(len(typo.Bases))]
	return typo.NewStrand(slices.Insert(s.Bases(), i, b)...)
}

// Delete removes a random base.
func (e *Editor) Delete(s typo.Strand) (typo.Strand, error) {
	if s.Len() == 0 {
		return typo.Strand{}, fmt.Errorf("failed to delete: %w", ErrEmptyStrand)
	}

	i := e.rng.Intn(s.Len())
	return typo.NewStrand(slices.Delete(s.Bases(), i, i+1)...), nil
}
