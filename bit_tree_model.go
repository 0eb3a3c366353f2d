package bincoder

import "fmt"

// BitTreeModel codes depth-bit unsigned integers MSB first. Each bit is coded
// by the adaptive model selected by the bits already coded, so the tree holds
// 2^depth-1 models indexed by the 1-based node number.
type BitTreeModel struct {
	probs   []AdaptiveModel
	numBits uint
}

func NewBitTreeModel(numBits uint, inertia uint8) (*BitTreeModel, error) {
	m := &BitTreeModel{}

	return m, m.Init(numBits, inertia)
}

// Init sizes the tree and sets every node to the unbiased probability and the
// given inertia.
func (m *BitTreeModel) Init(numBits uint, inertia uint8) error {
	if numBits < minTreeDepth || numBits > maxTreeDepth {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, numBits)
	}

	m.numBits = numBits
	m.probs = make([]AdaptiveModel, (1<<numBits)-1)

	for i := range m.probs {
		m.probs[i].init(inertia)
	}

	return nil
}

// Reset restores every node to the unbiased probability.
func (m *BitTreeModel) Reset() {
	for i := range m.probs {
		m.probs[i].Reset()
	}
}

func (m *BitTreeModel) Depth() uint {
	return m.numBits
}

func (m *BitTreeModel) Encode(e *Encoder, v uint32) error {
	if m.probs == nil {
		return ErrNotInitialized
	}

	if v>>m.numBits != 0 {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrValueOutOfRange, v, m.numBits)
	}

	context := uint32(1)

	for i := int(m.numBits) - 1; i >= 0; i-- {
		bit := (v >> uint(i)) & 1

		err := m.probs[context-1].Encode(e, bit)
		if err != nil {
			return err
		}

		context = (context << 1) | bit
	}

	return nil
}

func (m *BitTreeModel) Decode(d *Decoder) (uint32, error) {
	if m.probs == nil {
		return 0, ErrNotInitialized
	}

	var (
		bit uint32
		err error
	)

	context := uint32(1)

	for i := uint(0); i < m.numBits; i++ {
		bit, err = m.probs[context-1].Decode(d)
		if err != nil {
			return 0, err
		}

		context = (context << 1) | bit
	}

	return context - (uint32(1) << m.numBits), nil
}
