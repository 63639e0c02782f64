package search

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Trials configures independent repeats of a simulation or search.
type Trials struct {
	// Count is the number of trials; each gets its own random source
	Count int

	// Seed of the first trial. Trial i is seeded with Seed+i
	Seed int64

	// Log is optional
	Log *zap.Logger
}

// SimulateTrials runs trials.Count independent simulations of initial in parallel.
// Results are in trial order.
func SimulateTrials(ctx context.Context, initial typo.Strand, iterations int, trials Trials) ([]*SimulateResult, error) {
	results := make([]*SimulateResult, trials.Count)
	err := runTrials(ctx, trials, func(ctx context.Context, i int, rng Rand, log *zap.Logger) error {
		res, err := Simulate(ctx, initial, SimulateOptions{Iterations: iterations, Rand: rng, Log: log})
		if err != nil {
			return fmt.Errorf("simulation trial %d: %w", i, err)
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SearchTrials runs trials.Count independent searches from initial in parallel.
// Results are in trial order.
func SearchTrials(ctx context.Context, initial, apply typo.Strand, depth, edits int, trials Trials) ([]*SearchResult, error) {
	results := make([]*SearchResult, trials.Count)
	err := runTrials(ctx, trials, func(ctx context.Context, i int, rng Rand, log *zap.Logger) error {
		res, err := Search(ctx, initial, apply, SearchOptions{Depth: depth, Edits: edits, Rand: rng, Log: log})
		if err != nil {
			return fmt.Errorf("search trial %d: %w", i, err)
		}
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// runTrials calls run once per trial on a bounded group of goroutines. Each trial
// owns its random source and writes only its own slot of the caller's results.
func runTrials(ctx context.Context, trials Trials, run func(ctx context.Context, i int, rng Rand, log *zap.Logger) error) error {
	if trials.Count < 1 {
		return fmt.Errorf("%w: trials=%d", ErrInvalidOptions, trials.Count)
	}
	log := logger(trials.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < trials.Count; i++ {
		i := i
		seed := trials.Seed + int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			return run(gctx, i, rng, log.With(zap.Int("trial", i), zap.Int64("seed", seed)))
		})
	}
	return g.Wait()
}

// UniqueStrands merges the strands found by every simulation trial, sorted.
func UniqueStrands(results []*SimulateResult) []string {
	set := make(map[string]bool)
	for _, r := range results {
		for _, s := range r.Strands {
			set[s.String()] = true
		}
	}
	return keys(set)
}

// UniqueValid merges the valid strands found by every search trial, sorted.
func UniqueValid(results []*SearchResult) []string {
	set := make(map[string]bool)
	for _, r := range results {
		for _, n := range r.Valid {
			set[n.Strand.String()] = true
		}
	}
	return keys(set)
}
