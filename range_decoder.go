package bincoder

import (
	"errors"
	"fmt"
	"io"
)

// Decoder is the counterpart of Encoder. It must be driven with the same
// sequence of probabilities the encoder used; nothing in the stream detects a
// mismatch.
type Decoder struct {
	inStream io.ByteReader

	Low  uint32
	High uint32
	Code uint32
}

// NewDecoder primes the code register with the first four bytes of inStream.
// A short stream is zero-filled; a stream that fails with anything other
// than io.EOF yields ErrUnreadableSource.
func NewDecoder(inStream io.ByteReader) (*Decoder, error) {
	if inStream == nil {
		return nil, ErrUnreadableSource
	}

	d := &Decoder{
		inStream: inStream,

		High: 0xFFFFFFFF,
	}

	for i := 0; i < 4; i++ {
		b, err := d.readByte()
		if err != nil {
			return nil, err
		}

		d.Code = (d.Code << 8) | uint32(b)
	}

	return d, nil
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.inStream.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	return b, nil
}

// Decode returns the next bit given the probability of it being one.
func (d *Decoder) Decode(prob uint32) (uint32, error) {
	x := split(d.Low, d.High, prob)

	var bit uint32

	if d.Code <= x {
		d.High = x
		bit = 1
	} else {
		d.Low = x + 1
	}

	// Normalize
	for (d.Low ^ d.High) < kTopValue {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}

		d.Code = (d.Code << 8) | uint32(b)
		d.Low <<= 8
		d.High = (d.High << 8) | 0xFF
	}

	return bit, nil
}
