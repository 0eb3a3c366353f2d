package bincoder

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// Encoder is a carry-less binary range encoder. Bytes are emitted as soon as
// the top bytes of low and high agree, so nothing already written is ever
// revisited.
//
// An Encoder serves exactly one session and must be terminated by a single
// call to Flush.
type Encoder struct {
	outStream io.ByteWriter

	Low  uint32
	High uint32
}

func NewEncoder(outStream io.ByteWriter) *Encoder {
	return &Encoder{
		outStream: outStream,

		High: 0xFFFFFFFF,
	}
}

// Encode narrows the interval for bit with the given probability of the bit
// being one. Any non-zero bit is treated as one.
func (e *Encoder) Encode(bit, prob uint32) error {
	x := split(e.Low, e.High, prob)

	if bit != 0 {
		e.High = x
	} else {
		e.Low = x + 1
	}

	// Normalize
	for (e.Low ^ e.High) < kTopValue {
		err := e.outStream.WriteByte(byte(e.Low >> 24))
		if err != nil {
			return fmt.Errorf("bincoder: write byte: %w", err)
		}

		e.Low <<= 8
		e.High = (e.High << 8) | 0xFF
	}

	return nil
}

// Flush rounds low up to the value with the most trailing zero bytes that is
// still inside the interval and writes its non-zero leading bytes. The decoder
// zero-fills the rest.
func (e *Encoder) Flush() error {
	for roundUp := uint32(0x00FFFFFF); roundUp != 0; roundUp >>= 8 {
		if (e.Low | roundUp) == 0xFFFFFFFF {
			continue
		}

		rounded := (e.Low + roundUp) &^ roundUp
		if rounded <= e.High {
			e.Low = rounded

			break
		}
	}

	for e.Low != 0 {
		err := e.outStream.WriteByte(byte(e.Low >> 24))
		if err != nil {
			return fmt.Errorf("bincoder: write byte: %w", err)
		}

		e.Low <<= 8
	}

	if f, ok := e.outStream.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("bincoder: flush: %w", err)
		}
	}

	return nil
}

// split returns the last value of the sub-interval assigned to bit one.
func split(low, high, prob uint32) uint32 {
	return low + uint32((uint64(high-low)*uint64(prob))>>ProbBits)
}
