package typo

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnzyme(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []AminoAcid
		wantErr bool
	}{
		{
			"lower case",
			"cop-ina-rpy-off",
			[]AminoAcid{Cop, Ina, Rpy, Off},
			false,
		},
		{
			"mixed case",
			"CUT-Cop",
			[]AminoAcid{Cut, Cop},
			false,
		},
		{
			"unknown code",
			"cop-xyz",
			nil,
			true,
		},
		{
			"empty",
			"",
			nil,
			true,
		},
		{
			"dangling separator",
			"cop-",
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnzyme(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAminoAcid)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.AminoAcids()); diff != "" {
				t.Errorf("ParseEnzyme() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnzyme_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		e := randomEnzyme(rng, 1+rng.Intn(12), allAminoAcids())
		parsed, err := ParseEnzyme(e.String())
		require.NoError(t, err)
		assert.Equal(t, e.String(), parsed.String())
		assert.True(t, e.Equal(parsed))
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		strand string
		want   []string
	}{
		{
			"two enzymes split by punctuation",
			"CGGATACTAAACCGA",
			[]string{"cop-ina-rpy-off", "cut-cop"},
		},
		{
			"spaced literal",
			"CG GA TA CT AA AC CG A",
			[]string{"cop-ina-rpy-off", "cut-cop"},
		},
		{
			"empty strand",
			"",
			nil,
		},
		{
			"single base",
			"G",
			nil,
		},
		{
			"only punctuation",
			"AAAAAA",
			nil,
		},
		{
			"runs of punctuation make no empty enzymes",
			"AAAACAAAAATT",
			[]string{"mvr", "lpu"},
		},
		{
			"every duplet",
			"ACAGATCACCCGCTGAGCGGGTTATCTGTT",
			[]string{"cut-del-swi-mvr-mvl-cop-off-ina-inc-ing-int-rpy-rpu-lpy-lpu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range Translate(MustParseStrand(tt.strand)) {
				require.NotZero(t, e.Len())
				got = append(got, e.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Translate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		enzyme string
		want   Orientation
	}{
		{"cop-ina-rpy-off", OrientD},
		{"cut-cop", OrientD},
		{"cut", OrientR},
		{"off", OrientU},
		{"off-int", OrientL},
		{"cop-swi-inc-ing", OrientR},
		{"lpu-lpu-lpu-lpu-lpu", OrientU},
	}

	for _, tt := range tests {
		t.Run(tt.enzyme, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(MustParseEnzyme(tt.enzyme)))
		})
	}
}

// enzymes whose turns sum to the same value mod 4 fold the same way, whatever the order
func TestFold_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		aas := randomEnzyme(rng, 1+rng.Intn(10), allAminoAcids()).AminoAcids()
		shuffled := append([]AminoAcid(nil), aas...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		assert.Equal(t, Fold(NewEnzyme(aas...)), Fold(NewEnzyme(shuffled...)))
	}
}

func TestBindingSite(t *testing.T) {
	tests := []struct {
		name   string
		enzyme string
		strand string
		want   int
		wantOK bool
	}{
		{"binds G", "cop-ina-rpy-off", "CGGATACTAAACCGA", 1, true},
		{"binds A", "cut", "CCAGA", 2, true},
		{"binds C", "off", "GGTC", 3, true},
		{"binds T", "off-int", "TAAA", 0, true},
		{"no site", "cut", "CCGG", -1, false},
		{"empty strand", "cut", "", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BindingSite(MustParseEnzyme(tt.enzyme), MustParseStrand(tt.strand))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func allAminoAcids() []AminoAcid {
	aas := make([]AminoAcid, aminoAcidCount)
	for i := range aas {
		aas[i] = AminoAcid(i)
	}
	return aas
}

func randomEnzyme(rng *rand.Rand, n int, from []AminoAcid) Enzyme {
	aas := make([]AminoAcid, n)
	for i := range aas {
		aas[i] = from[rng.Intn(len(from))]
	}
	return NewEnzyme(aas...)
}
