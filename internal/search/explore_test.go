package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gregorybchris/typogenetics/internal/typo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

const example = "CGGATACTAAACCGA"

func TestSignature(t *testing.T) {
	tests := []struct {
		name   string
		strand string
		apply  string
		want   string
		wantOK bool
	}{
		{
			"longest enzyme, longest strand",
			example,
			example,
			"CGAGATACTAAACCGA",
			true,
		},
		{
			"first of equally long strands",
			"AC", // cut
			"CAGT",
			"GT",
			true,
		},
		{
			"first of equally long enzymes",
			"ACAACA", // cut, mvr
			"CAGT",
			"GT",
			true,
		},
		{
			"unbound enzyme signs with the apply strand",
			"AC",
			"CCGG",
			"CCGG",
			true,
		},
		{
			"no enzymes",
			"AAAA",
			example,
			"",
			false,
		},
		{
			"too short to translate",
			"C",
			example,
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Signature(typo.MustParseStrand(tt.strand), typo.MustParseStrand(tt.apply))
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestSimulate(t *testing.T) {
	initial := typo.MustParseStrand(example)
	res, err := Simulate(context.Background(), initial, SimulateOptions{
		Iterations: 200,
		Rand:       rand.New(rand.NewSource(42)),
		Log:        zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)),
	})
	require.NoError(t, err)

	assert.Equal(t, 200, res.Iterations)
	require.NotEmpty(t, res.Strands)
	assert.True(t, res.Strands[0].Equal(initial))

	seen := make(map[string]bool)
	for _, s := range res.Strands {
		assert.False(t, seen[s.String()], "%s found twice", s)
		seen[s.String()] = true
	}
	assert.Len(t, res.Sorted(), len(res.Strands))
}

func TestSimulate_Deterministic(t *testing.T) {
	run := func() []string {
		res, err := Simulate(context.Background(), typo.MustParseStrand(example), SimulateOptions{
			Iterations: 300,
			Rand:       rand.New(rand.NewSource(7)),
		})
		require.NoError(t, err)
		return res.Sorted()
	}
	assert.Equal(t, run(), run())
}

func TestSimulate_NoEnzymes(t *testing.T) {
	res, err := Simulate(context.Background(), typo.MustParseStrand("AAAAA"), SimulateOptions{
		Iterations: 50,
		Rand:       rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAA"}, res.Sorted())
}

func TestSimulate_Invalid(t *testing.T) {
	_, err := Simulate(context.Background(), typo.MustParseStrand(example), SimulateOptions{Iterations: 10})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Simulate(context.Background(), typo.MustParseStrand(example), SimulateOptions{
		Iterations: -1,
		Rand:       rand.New(rand.NewSource(1)),
	})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Simulate(ctx, typo.MustParseStrand(example), SimulateOptions{
		Iterations: 1000,
		Rand:       rand.New(rand.NewSource(1)),
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Iterations)
}

func TestSearch(t *testing.T) {
	initial := typo.MustParseStrand(example)
	apply := typo.MustParseStrand(example)
	opts := SearchOptions{
		Depth: 3,
		Edits: 8,
		Rand:  rand.New(rand.NewSource(42)),
		Log:   zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)),
	}

	res, err := Search(context.Background(), initial, apply, opts)
	require.NoError(t, err)
	require.False(t, res.Aborted)
	assert.Equal(t, "CGAGATACTAAACCGA", res.Signature.String())

	// every distinct edit is evaluated exactly once
	assert.Equal(t, res.Seen, res.Evaluated)
	assert.LessOrEqual(t, res.Seen, res.Expanded*opts.Edits)
	assert.LessOrEqual(t, res.Deepest, opts.Depth)

	valid := make(map[string]bool)
	for _, n := range res.Valid {
		assert.False(t, valid[n.Strand.String()], "%s found twice", n.Strand)
		valid[n.Strand.String()] = true

		assert.GreaterOrEqual(t, n.Depth, 1)
		assert.LessOrEqual(t, n.Depth, opts.Depth+1)

		sig, ok := Signature(n.Strand, apply)
		require.True(t, ok)
		assert.Equal(t, res.Signature.String(), sig.String())
	}
}

func TestSearch_Deterministic(t *testing.T) {
	run := func() []string {
		res, err := Search(context.Background(), typo.MustParseStrand(example), typo.MustParseStrand(example), SearchOptions{
			Depth: 2,
			Edits: 6,
			Rand:  rand.New(rand.NewSource(9)),
		})
		require.NoError(t, err)
		return res.Sorted()
	}
	assert.Equal(t, run(), run())
}

func TestSearch_ZeroDepth(t *testing.T) {
	res, err := Search(context.Background(), typo.MustParseStrand(example), typo.MustParseStrand(example), SearchOptions{
		Depth: 0,
		Edits: 10,
		Rand:  rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)

	// only the initial strand is expanded
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 0, res.Deepest)
	for _, n := range res.Valid {
		assert.Equal(t, 1, n.Depth)
	}
}

func TestSearch_Aborted(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	res, err := Search(context.Background(), typo.MustParseStrand("AAAA"), typo.MustParseStrand(example), SearchOptions{
		Depth: 5,
		Edits: 5,
		Rand:  rand.New(rand.NewSource(1)),
		Log:   zap.New(core),
	})
	require.NoError(t, err)
	assert.True(t, res.Aborted)
	assert.Empty(t, res.Valid)
	assert.Equal(t, 1, logs.Len())
}

func TestSearch_Invalid(t *testing.T) {
	s := typo.MustParseStrand(example)
	tests := []struct {
		name string
		opts SearchOptions
	}{
		{"no rand", SearchOptions{Depth: 1, Edits: 1}},
		{"negative depth", SearchOptions{Depth: -1, Edits: 1, Rand: rand.New(rand.NewSource(1))}},
		{"no edits", SearchOptions{Depth: 1, Edits: 0, Rand: rand.New(rand.NewSource(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Search(context.Background(), s, s, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Search(ctx, typo.MustParseStrand(example), typo.MustParseStrand(example), SearchOptions{
		Depth: 10,
		Edits: 10,
		Rand:  rand.New(rand.NewSource(1)),
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Expanded)
}
