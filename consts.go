package bincoder

const (
	// ProbBits is the fixed-point precision of a probability.
	ProbBits = 31
	// ProbMax is the probability scale. Valid probabilities lie in [0, ProbMax).
	ProbMax uint32 = 1 << ProbBits

	probHalf = ProbMax / 2

	kTopValue = 1 << 24

	minInertia = 1
	maxInertia = 31

	minTreeDepth = 1
	maxTreeDepth = 20
)
