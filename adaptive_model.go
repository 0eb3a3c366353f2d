package bincoder

// AdaptiveModel is a binary shift model: after every coded bit the
// probability moves towards the observed value by 1/2^inertia of the
// remaining distance.
type AdaptiveModel struct {
	prob    uint32
	inertia uint8
}

// NewAdaptiveModel returns an unbiased model. Smaller inertia adapts faster.
func NewAdaptiveModel(inertia uint8) *AdaptiveModel {
	m := &AdaptiveModel{}
	m.init(inertia)

	return m
}

func (m *AdaptiveModel) init(inertia uint8) {
	m.inertia = clampInertia(inertia)
	m.Reset()
}

// Reset restores the unbiased probability. Inertia is kept.
func (m *AdaptiveModel) Reset() {
	m.prob = probHalf
}

func (m *AdaptiveModel) Prob() uint32 {
	return m.prob
}

func (m *AdaptiveModel) SetProb(prob uint32) {
	m.prob = clampProb(prob)
}

func (m *AdaptiveModel) SetProbFloat(f float64) {
	m.prob = probFromFloat(f)
}

func (m *AdaptiveModel) Inertia() uint8 {
	return m.inertia
}

// SetInertia affects future updates only.
func (m *AdaptiveModel) SetInertia(inertia uint8) {
	m.inertia = clampInertia(inertia)
}

func (m *AdaptiveModel) Encode(e *Encoder, bit uint32) error {
	err := e.Encode(bit, m.prob)
	if err != nil {
		return err
	}

	m.update(bit)

	return nil
}

func (m *AdaptiveModel) Decode(d *Decoder) (uint32, error) {
	bit, err := d.Decode(m.prob)
	if err != nil {
		return 0, err
	}

	m.update(bit)

	return bit, nil
}

func (m *AdaptiveModel) update(bit uint32) {
	shift := clampInertia(m.inertia)

	if bit != 0 {
		m.prob += (ProbMax - m.prob) >> shift
	} else {
		m.prob -= m.prob >> shift
	}
}
