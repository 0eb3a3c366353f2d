package bincoder

import "fmt"

const (
	literalBits    = 8
	maxContextBits = 8
)

// Properties configure the byte stream adapters. Both sides of a stream must
// use the same values; they are not stored in the stream.
type Properties struct {
	// Inertia of every literal model.
	Inertia uint8
	// ContextBits is the number of high bits of the previous byte used to
	// select the literal model.
	ContextBits uint8
}

func DefaultProperties() Properties {
	return Properties{
		Inertia:     4,
		ContextBits: 3,
	}
}

func (p Properties) Validate() error {
	if p.Inertia < minInertia || p.Inertia > maxInertia {
		return fmt.Errorf("%w: inertia %d", ErrIncorrectProperties, p.Inertia)
	}

	if p.ContextBits > maxContextBits {
		return fmt.Errorf("%w: context bits %d", ErrIncorrectProperties, p.ContextBits)
	}

	return nil
}

// literalCoder codes bytes through one bit tree per previous-byte context.
type literalCoder struct {
	contextBits uint8
	trees       []BitTreeModel
	prevByte    byte
}

func newLiteralCoder(p Properties) (*literalCoder, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	c := &literalCoder{
		contextBits: p.ContextBits,
		trees:       make([]BitTreeModel, 1<<p.ContextBits),
	}

	for i := range c.trees {
		err = c.trees[i].Init(literalBits, p.Inertia)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *literalCoder) tree() *BitTreeModel {
	return &c.trees[uint32(c.prevByte)>>(literalBits-c.contextBits)]
}

func (c *literalCoder) Encode(e *Encoder, b byte) error {
	err := c.tree().Encode(e, uint32(b))
	if err != nil {
		return err
	}

	c.prevByte = b

	return nil
}

func (c *literalCoder) Decode(d *Decoder) (byte, error) {
	v, err := c.tree().Decode(d)
	if err != nil {
		return 0, err
	}

	c.prevByte = byte(v)

	return c.prevByte, nil
}
