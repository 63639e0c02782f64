package typo

// Orientation is the direction a folded enzyme's last amino acid points in.
type Orientation uint8

const (
	OrientR Orientation = iota
	OrientD
	OrientL
	OrientU
)

var orientationNames = [...]string{OrientR: "R", OrientD: "D", OrientL: "L", OrientU: "U"}

// affinities is the base each orientation binds to.
var affinities = [...]Base{OrientR: A, OrientD: G, OrientL: T, OrientU: C}

func (o Orientation) String() string {
	return orientationNames[o]
}

// Fold computes an enzyme's orientation from the sum of its turns, mod 4.
func Fold(e Enzyme) Orientation {
	turning := 0
	for _, aa := range e.aminoAcids {
		turning += int(aa.Turn())
	}
	return Orientation(((turning % 4) + 4) % 4)
}

// BindingAffinity is the base an enzyme with orientation o binds to.
func BindingAffinity(o Orientation) Base {
	return affinities[o]
}

// BindingSite returns the index of the first base in s the enzyme binds to. The bool
// is false when the strand has no such base.
func BindingSite(e Enzyme, s Strand) (int, bool) {
	affinity := BindingAffinity(Fold(e))
	for i, b := range s.bases {
		if b == affinity {
			return i, true
		}
	}
	return -1, false
}
