package bincoder

import "errors"

var (
	ErrUnreadableSource    = errors.New("bincoder: unable to read from decode stream")
	ErrNotInitialized      = errors.New("bincoder: model is not initialized")
	ErrInvalidDepth        = errors.New("bincoder: tree depth out of range")
	ErrValueOutOfRange     = errors.New("bincoder: value out of range")
	ErrIncorrectProperties = errors.New("bincoder: incorrect properties")
)
