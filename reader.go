package bincoder

import (
	"bufio"
	"fmt"
	"io"
)

// Reader decompresses a stream produced by Writer.
type Reader struct {
	rangeDec *Decoder
	literals *literalCoder

	bytesLeft int64
}

// NewReader creates a reader that yields exactly unpackSize bytes.
func NewReader(inStream io.Reader, unpackSize int64, p Properties) (*Reader, error) {
	if unpackSize < 0 {
		return nil, fmt.Errorf("%w: unpack size %d", ErrIncorrectProperties, unpackSize)
	}

	literals, err := newLiteralCoder(p)
	if err != nil {
		return nil, err
	}

	if inStream == nil {
		return nil, ErrUnreadableSource
	}

	br, ok := inStream.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(inStream)
	}

	rangeDec, err := NewDecoder(br)
	if err != nil {
		return nil, fmt.Errorf("rangeDec.Init: %w", err)
	}

	return &Reader{
		rangeDec:  rangeDec,
		literals:  literals,
		bytesLeft: unpackSize,
	}, nil
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.bytesLeft == 0 {
		return 0, io.EOF
	}

	for n < len(p) && r.bytesLeft > 0 {
		p[n], err = r.literals.Decode(r.rangeDec)
		if err != nil {
			return n, fmt.Errorf("decode literal: %w", err)
		}

		n++
		r.bytesLeft--
	}

	return n, nil
}
