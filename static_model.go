package bincoder

// StaticModel codes bits against a fixed probability. Coding never changes
// it, so one instance may be shared between contexts.
type StaticModel struct {
	prob uint32
}

// NewStaticModel returns a model with the given probability of a one bit.
func NewStaticModel(prob uint32) *StaticModel {
	return &StaticModel{prob: clampProb(prob)}
}

func (m *StaticModel) Prob() uint32 {
	return m.prob
}

func (m *StaticModel) SetProb(prob uint32) {
	m.prob = clampProb(prob)
}

// SetProbFloat sets the probability from a fraction in [0, 1).
func (m *StaticModel) SetProbFloat(f float64) {
	m.prob = probFromFloat(f)
}

func (m *StaticModel) Encode(e *Encoder, bit uint32) error {
	return e.Encode(bit, m.prob)
}

func (m *StaticModel) Decode(d *Decoder) (uint32, error) {
	return d.Decode(m.prob)
}
