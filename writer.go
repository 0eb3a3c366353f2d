package bincoder

import (
	"bufio"
	"fmt"
	"io"
)

// Writer compresses bytes into a raw range coded stream. The stream carries
// no length; the reader has to be told how many bytes to decode.
type Writer struct {
	rangeEnc *Encoder
	literals *literalCoder

	written int64
	closed  bool
}

// NewWriter creates a writer on top of outStream. Writers that are not
// io.ByteWriter are buffered; the buffer is flushed on Close.
func NewWriter(outStream io.Writer, p Properties) (*Writer, error) {
	literals, err := newLiteralCoder(p)
	if err != nil {
		return nil, err
	}

	bw, ok := outStream.(io.ByteWriter)
	if !ok {
		bw = bufio.NewWriter(outStream)
	}

	return &Writer{
		rangeEnc: NewEncoder(bw),
		literals: literals,
	}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errAlreadyClosed
	}

	for i, b := range p {
		err := w.literals.Encode(w.rangeEnc, b)
		if err != nil {
			return i, fmt.Errorf("bincoder: encode literal: %w", err)
		}

		w.written++
	}

	return len(p), nil
}

// Written returns the number of uncompressed bytes accepted so far.
func (w *Writer) Written() int64 {
	return w.written
}

// Close terminates the stream. The underlying writer is not closed.
func (w *Writer) Close() error {
	if w.closed {
		return errAlreadyClosed
	}

	w.closed = true

	return w.rangeEnc.Flush()
}
