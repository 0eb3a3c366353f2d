package bincoder

// Model codes one symbol per call against a live coder. Bits, fixed-width
// integers and unbounded integers all share this shape, so larger models are
// built by holding smaller ones.
type Model interface {
	Encode(e *Encoder, v uint32) error
	Decode(d *Decoder) (uint32, error)
}

var (
	_ Model = (*StaticModel)(nil)
	_ Model = (*AdaptiveModel)(nil)
	_ Model = (*BitTreeModel)(nil)
	_ Model = (*UnsignedGolombModel)(nil)
)

func clampProb(p uint32) uint32 {
	if p >= ProbMax {
		return ProbMax - 1
	}

	return p
}

// probFromFloat scales a fractional probability into [0, ProbMax).
func probFromFloat(f float64) uint32 {
	if !(f > 0) {
		return 0
	}

	if f >= 1 {
		return ProbMax - 1
	}

	return clampProb(uint32(f * float64(ProbMax)))
}

// clampInertia maps 0 to the fastest usable rate. Past maxInertia the shift
// would never move the probability.
func clampInertia(inertia uint8) uint8 {
	if inertia < minInertia {
		return minInertia
	}

	if inertia > maxInertia {
		return maxInertia
	}

	return inertia
}
