package bincoder

import (
	"fmt"
	"math"
)

// MaxTop is the last magnitude with its own model for the top residual bit.
// Larger magnitudes share it.
const MaxTop = 7

// maxMagnitude is the magnitude of math.MaxUint32 + 1.
const maxMagnitude = 32

// UnsignedGolombModel is an adaptive exp-Golomb code for unbounded unsigned
// integers. value+1 is split into its magnitude (the position of its leading
// one), coded through a bit tree, and the bits below the leading one. The
// first of those is coded by a model per magnitude, the rest at 1/2.
type UnsignedGolombModel struct {
	magnitude    BitTreeModel
	bitPositions []AdaptiveModel
}

func NewUnsignedGolombModel(depth uint, inertia uint8) (*UnsignedGolombModel, error) {
	m := &UnsignedGolombModel{}

	return m, m.Init(depth, inertia)
}

// Init sizes the magnitude tree to depth bits. A depth of 6 covers every
// uint32.
func (m *UnsignedGolombModel) Init(depth uint, inertia uint8) error {
	err := m.magnitude.Init(depth, inertia)
	if err != nil {
		return err
	}

	m.bitPositions = make([]AdaptiveModel, MaxTop+1)
	for i := range m.bitPositions {
		m.bitPositions[i].init(inertia)
	}

	return nil
}

func (m *UnsignedGolombModel) Reset() {
	m.magnitude.Reset()

	for i := range m.bitPositions {
		m.bitPositions[i].Reset()
	}
}

func (m *UnsignedGolombModel) Encode(e *Encoder, value uint32) error {
	if m.bitPositions == nil {
		return ErrNotInitialized
	}

	v := uint64(value) + 1

	magnitude := uint32(0)
	for v >= uint64(2)<<magnitude {
		magnitude++
	}

	if magnitude>>m.magnitude.Depth() != 0 {
		return fmt.Errorf("%w: %d needs magnitude %d", ErrValueOutOfRange, value, magnitude)
	}

	err := m.magnitude.Encode(e, magnitude)
	if err != nil {
		return err
	}

	if magnitude == 0 {
		return nil
	}

	mask := uint64(1) << (magnitude - 1)

	err = m.bitPositions[topIndex(magnitude)].Encode(e, bitAt(v, mask))
	if err != nil {
		return err
	}

	for mask >>= 1; mask != 0; mask >>= 1 {
		err = e.Encode(bitAt(v, mask), probHalf)
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *UnsignedGolombModel) Decode(d *Decoder) (uint32, error) {
	if m.bitPositions == nil {
		return 0, ErrNotInitialized
	}

	magnitude, err := m.magnitude.Decode(d)
	if err != nil {
		return 0, err
	}

	if magnitude > maxMagnitude {
		return 0, fmt.Errorf("%w: magnitude %d", ErrValueOutOfRange, magnitude)
	}

	if magnitude == 0 {
		return 0, nil
	}

	v := uint64(1)

	bit, err := m.bitPositions[topIndex(magnitude)].Decode(d)
	if err != nil {
		return 0, err
	}

	v = (v << 1) | uint64(bit)

	for i := uint32(1); i < magnitude; i++ {
		bit, err = d.Decode(probHalf)
		if err != nil {
			return 0, err
		}

		v = (v << 1) | uint64(bit)
	}

	if v-1 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, v-1)
	}

	return uint32(v - 1), nil
}

func topIndex(magnitude uint32) int {
	if magnitude < MaxTop {
		return int(magnitude)
	}

	return MaxTop
}

func bitAt(v, mask uint64) uint32 {
	if v&mask != 0 {
		return 1
	}

	return 0
}

// SignedGolombModel codes |value| through an UnsignedGolombModel followed by
// a sign bit for non-zero values. The caller's sign prediction picks one of
// two sign models, which lets correlated signs cost less than a bit.
type SignedGolombModel struct {
	absoluteVal UnsignedGolombModel
	signs       []AdaptiveModel
}

func NewSignedGolombModel(depth uint, inertia, signInertia uint8) (*SignedGolombModel, error) {
	m := &SignedGolombModel{}

	return m, m.Init(depth, inertia, signInertia)
}

func (m *SignedGolombModel) Init(depth uint, inertia, signInertia uint8) error {
	err := m.absoluteVal.Init(depth, inertia)
	if err != nil {
		return err
	}

	m.signs = make([]AdaptiveModel, 2)
	for i := range m.signs {
		m.signs[i].init(signInertia)
	}

	return nil
}

func (m *SignedGolombModel) Reset() {
	m.absoluteVal.Reset()

	for i := range m.signs {
		m.signs[i].Reset()
	}
}

func (m *SignedGolombModel) Encode(e *Encoder, value int32, signPredicted bool) error {
	if m.signs == nil {
		return ErrNotInitialized
	}

	abs := uint32(value)
	if value < 0 {
		abs = uint32(-int64(value))
	}

	err := m.absoluteVal.Encode(e, abs)
	if err != nil {
		return err
	}

	if abs == 0 {
		return nil
	}

	var sign uint32
	if value < 0 {
		sign = 1
	}

	return m.signs[signIndex(signPredicted)].Encode(e, sign)
}

func (m *SignedGolombModel) Decode(d *Decoder, signPredicted bool) (int32, error) {
	if m.signs == nil {
		return 0, ErrNotInitialized
	}

	abs, err := m.absoluteVal.Decode(d)
	if err != nil {
		return 0, err
	}

	if abs == 0 {
		return 0, nil
	}

	sign, err := m.signs[signIndex(signPredicted)].Decode(d)
	if err != nil {
		return 0, err
	}

	v := int64(abs)
	if sign != 0 {
		v = -v
	}

	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}

	return int32(v), nil
}

func signIndex(signPredicted bool) int {
	if signPredicted {
		return 1
	}

	return 0
}
