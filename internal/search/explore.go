package search

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"go.uber.org/zap"
)

// ErrInvalidOptions is returned when a search is missing a bound or a random source.
var ErrInvalidOptions = errors.New("invalid search options")

// SimulateOptions bound a random growth simulation.
type SimulateOptions struct {
	// Iterations is the number of enzyme applications to attempt
	Iterations int

	// Rand picks strands and enzymes
	Rand Rand

	// Log is optional
	Log *zap.Logger
}

// SimulateResult is what a random growth simulation found.
type SimulateResult struct {
	// Iterations the simulation ran for
	Iterations int

	// Strands known at the end, in the order they were found. The first is the initial strand.
	Strands []typo.Strand
}

// Sorted returns the canonical form of every strand found, sorted.
func (r *SimulateResult) Sorted() []string {
	return sortedStrings(r.Strands)
}

// Simulate grows a pool of strands from initial. Each iteration translates a random
// strand of the pool, applies one of its enzymes to another random strand of the pool
// and adds whatever new strands that makes.
func Simulate(ctx context.Context, initial typo.Strand, opts SimulateOptions) (*SimulateResult, error) {
	if opts.Iterations < 0 || opts.Rand == nil {
		return nil, fmt.Errorf("%w: iterations=%d, rand set=%t", ErrInvalidOptions, opts.Iterations, opts.Rand != nil)
	}
	log := logger(opts.Log)
	rewriter := typo.NewRewriter(log)

	res := &SimulateResult{Strands: []typo.Strand{initial}}
	known := map[string]bool{initial.String(): true}
	for res.Iterations < opts.Iterations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Iterations++

		enzymes := typo.Translate(res.Strands[opts.Rand.Intn(len(res.Strands))])
		if len(enzymes) == 0 {
			continue
		}
		enzyme := enzymes[opts.Rand.Intn(len(enzymes))]
		target := res.Strands[opts.Rand.Intn(len(res.Strands))]

		for _, s := range rewriter.Rewrite(enzyme, target).Strands {
			key := s.String()
			if known[key] {
				continue
			}
			known[key] = true
			res.Strands = append(res.Strands, s)
		}
	}

	log.Info("simulation finished",
		zap.Int("iterations", res.Iterations),
		zap.Int("strands", len(res.Strands)),
	)
	return res, nil
}

// SearchOptions bound a functional equivalence search.
type SearchOptions struct {
	// Depth is the number of edits away from the initial strand to search
	Depth int

	// Edits is the number of random edits tried on each strand (the branching factor)
	Edits int

	// Rand drives the edits
	Rand Rand

	// Log is optional
	Log *zap.Logger
}

// Node is a strand found by the search and the number of edits it is from the initial strand.
type Node struct {
	Strand typo.Strand
	Depth  int
}

// SearchResult is what a functional equivalence search found.
type SearchResult struct {
	// Signature of the initial strand
	Signature typo.Strand

	// Aborted is set when the initial strand had no signature and nothing was searched
	Aborted bool

	// Valid strands share the initial strand's signature, in the order they were found
	Valid []Node

	// Seen is the number of distinct strands edits produced
	Seen int

	// Evaluated is the number of signatures computed for edited strands
	Evaluated int

	// Expanded is the number of strands edits were tried on
	Expanded int

	// Deepest is the largest depth of an expanded strand
	Deepest int
}

// Sorted returns the canonical form of every valid strand, sorted.
func (r *SearchResult) Sorted() []string {
	strands := make([]typo.Strand, len(r.Valid))
	for i, n := range r.Valid {
		strands[i] = n.Strand
	}
	return sortedStrings(strands)
}

// Signature is the functional fingerprint of a strand against apply: the longest
// strand made when the strand's longest enzyme rewrites apply. Ties go to the first.
// The bool is false when the strand has no enzymes or the rewrite makes nothing.
func Signature(s, apply typo.Strand) (typo.Strand, bool) {
	return signature(typo.NewRewriter(nil), zap.NewNop(), s, apply)
}

func signature(r *typo.Rewriter, log *zap.Logger, s, apply typo.Strand) (typo.Strand, bool) {
	enzymes := typo.Translate(s)
	if len(enzymes) == 0 {
		return typo.Strand{}, false
	}
	log.Debug("translated", zap.Stringer("strand", s), zap.Stringers("enzymes", enzymes))

	longest := enzymes[0]
	for _, e := range enzymes[1:] {
		if e.Len() > longest.Len() {
			longest = e
		}
	}
	log.Debug("longest enzyme", zap.Stringer("enzyme", longest))

	strands := r.Rewrite(longest, apply).Strands
	if len(strands) == 0 {
		return typo.Strand{}, false
	}
	log.Debug("rewrote", zap.Stringer("apply", apply), zap.Stringers("strands", strands))

	sig := strands[0]
	for _, st := range strands[1:] {
		if st.Len() > sig.Len() {
			sig = st
		}
	}
	return sig, true
}

// Search looks for strands within opts.Depth random edits of initial whose signature
// against apply matches initial's. Edits of valid strands are explored breadth first and
// no strand is evaluated twice. An initial strand without a signature aborts the search; that
// is reported on the result, not as an error.
func Search(ctx context.Context, initial, apply typo.Strand, opts SearchOptions) (*SearchResult, error) {
	if opts.Depth < 0 || opts.Edits < 1 || opts.Rand == nil {
		return nil, fmt.Errorf("%w: depth=%d, edits=%d, rand set=%t", ErrInvalidOptions, opts.Depth, opts.Edits, opts.Rand != nil)
	}
	log := logger(opts.Log)
	rewriter := typo.NewRewriter(nil)
	editor := NewEditor(opts.Rand)

	want, ok := signature(rewriter, log, initial, apply)
	if !ok {
		log.Error("could not find any rewrite strands for the apply strand",
			zap.Stringer("init", initial),
			zap.Stringer("apply", apply),
		)
		return &SearchResult{Aborted: true}, nil
	}
	wantKey := want.String()
	log.Info("searching for enzymes with the same function",
		zap.Stringer("signature", want),
		zap.Stringer("apply", apply),
	)

	res := &SearchResult{Signature: want}
	seen := make(map[string]bool)
	queue := []Node{{Strand: initial}}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		node := queue[0]
		queue = queue[1:]
		if node.Depth > opts.Depth {
			continue
		}
		res.Expanded++
		res.Deepest = max(res.Deepest, node.Depth)

		for i := 0; i < opts.Edits; i++ {
			edited, err := editor.Edit(node.Strand)
			if err != nil {
				return res, fmt.Errorf("failed to edit %s: %w", node.Strand, err)
			}

			key := edited.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			res.Seen++

			sig, ok := signature(rewriter, zap.NewNop(), edited, apply)
			res.Evaluated++
			if !ok || sig.String() != wantKey {
				continue
			}

			child := Node{Strand: edited, Depth: node.Depth + 1}
			res.Valid = append(res.Valid, child)
			if child.Depth <= opts.Depth {
				queue = append(queue, child)
			}
		}
	}

	log.Info("search finished",
		zap.Int("valid", len(res.Valid)),
		zap.Int("seen", res.Seen),
		zap.Int("depth", opts.Depth),
		zap.Int("edits", opts.Edits),
	)
	return res, nil
}

func logger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func sortedStrings(strands []typo.Strand) []string {
	out := make([]string, len(strands))
	for i, s := range strands {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}
