package bincoder

import (
	"errors"
	"fmt"
	"io"
)

type readCloser struct {
	c io.Closer
	r io.Reader
}

var errAlreadyClosed = errors.New("bincoder: already closed")

// NewReadCloser is NewReader that also closes inStream on Close.
func NewReadCloser(inStream io.ReadCloser, unpackSize int64, p Properties) (io.ReadCloser, error) {
	r, err := NewReader(inStream, unpackSize, p)
	if err != nil {
		return nil, err
	}

	return &readCloser{c: inStream, r: r}, nil
}

func (rc *readCloser) Close() error {
	if rc.c == nil || rc.r == nil {
		return errAlreadyClosed
	}

	if err := rc.c.Close(); err != nil {
		return fmt.Errorf("bincoder: error closing: %w", err)
	}

	rc.c, rc.r = nil, nil

	return nil
}

func (rc *readCloser) Read(p []byte) (int, error) {
	if rc.r == nil {
		return 0, errAlreadyClosed
	}

	n, err := rc.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("bincoder: error reading: %w", err)
	}

	return n, err
}
