package typo

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stop is how a rewrite ended.
type Stop uint8

const (
	// Completed means every amino acid of the enzyme ran
	Completed Stop = iota

	// Terminated means an amino acid ran off the strand and ended the rewrite early
	Terminated

	// Unbound means the enzyme had no binding site and the strand was left alone
	Unbound
)

func (s Stop) String() string {
	switch s {
	case Completed:
		return "completed"
	case Terminated:
		return "terminated"
	default:
		return "unbound"
	}
}

// Result is the outcome of rewriting a strand with an enzyme.
type Result struct {
	// Strands made by the rewrite, in the order they were flushed
	Strands []Strand

	// Site is the binding site, -1 when unbound
	Site int

	// Stop is how the rewrite ended
	Stop Stop

	// StoppedAt is the index of the amino acid that terminated the rewrite, -1 otherwise
	StoppedAt int
}

// Rewriter applies enzymes to strands, tracing every step at debug level.
type Rewriter struct {
	log *zap.Logger
}

// NewRewriter returns a Rewriter that logs to log. A nil log discards everything.
func NewRewriter(log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{log: log}
}

var quiet = NewRewriter(nil)

// Rewrite applies the enzyme to the strand and returns the strands it makes.
// An enzyme that cannot bind leaves the strand as it was.
func Rewrite(e Enzyme, s Strand) []Strand {
	return quiet.Rewrite(e, s).Strands
}

// Rewrite binds the enzyme to the strand and runs its amino acids, in order, against
// a working tape. Running off the strand ends execution early; whatever is left on
// the tape is still flushed into strands.
func (r *Rewriter) Rewrite(e Enzyme, s Strand) Result {
	site, ok := BindingSite(e, s)
	if !ok {
		r.log.Debug("enzyme does not bind", zap.Stringer("enzyme", e), zap.Stringer("strand", s))
		return Result{Strands: []Strand{s}, Site: -1, Stop: Unbound, StoppedAt: -1}
	}

	trace := r.log.Core().Enabled(zapcore.DebugLevel)
	if trace {
		r.log.Debug("rewriting",
			zap.Stringer("enzyme", e),
			zap.Stringer("strand", s),
			zap.Int("unit", site),
		)
	}

	t := newTape(s, site)
	res := Result{Site: site, Stop: Completed, StoppedAt: -1}
	for i, aa := range e.aminoAcids {
		if trace {
			r.log.Debug("applying", zap.Stringer("amino_acid", aa), zap.Int("unit", t.unit), zap.Bool("copy", t.copy))
		}

		if !r.apply(t, aa, &res.Strands) {
			r.log.Debug("reached end of strand", zap.Stringer("amino_acid", aa), zap.Int("step", i))
			res.Stop = Terminated
			res.StoppedAt = i
			break
		}

		if trace {
			r.log.Debug("tape\n" + t.String())
		}
	}

	res.Strands = append(res.Strands, strands(t.pairs)...)
	return res
}

// apply runs one amino acid against the tape. Strands cut away are appended to out.
// It returns false when the amino acid ends the rewrite.
func (r *Rewriter) apply(t *tape, aa AminoAcid, out *[]Strand) bool {
	switch aa {
	case Cut:
		*out = append(*out, strands(t.cut())...)
	case Del:
		// del always moves left
		t.pairs[t.unit].hasBind = false
		t.unit--
		return t.unit >= 0
	case Swi:
		if !t.pairs[t.unit].hasComp {
			r.log.Debug("no complement to switch to", zap.Int("unit", t.unit))
			return false
		}
		t.switchStrand()
	case Mvr, Mvl:
		return t.move(aminoAcids[aa].dir)
	case Cop:
		if !t.pairs[t.unit].hasBind {
			return false
		}
		t.copy = true
		t.pairs[t.unit].copyBind()
	case Off:
		t.copy = false
	case Ina, Inc, Ing, Int:
		t.insert(aminoAcids[aa].insert)
	case Rpy, Rpu, Lpy, Lpu:
		want := aminoAcids[aa]
		for {
			if !t.move(want.dir) {
				return false
			}
			if t.pairs[t.unit].bind.Is(want.class) {
				break
			}
		}
	}
	return true
}
