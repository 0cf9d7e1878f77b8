package grid

import (
	"io"
	"strings"

	msgpack "github.com/shamaton/msgpack/v2"
)

// Configuration is the position of every piece. The index of an entry is the
// identity of the piece; piece 0 is the reference piece.
type Configuration []Position

// Equal is order and identity sensitive.
func (c Configuration) Equal(o Configuration) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// With returns a copy of c with piece i moved to p.
func (c Configuration) With(i int, p Position) Configuration {
	out := c.Clone()
	out[i] = p
	return out
}

// Translate returns a copy of c with every piece shifted by v.
func (c Configuration) Translate(v Position) Configuration {
	out := make(Configuration, len(c))
	for i, p := range c {
		out[i] = p.Add(v)
	}
	return out
}

// Serialize writes the msgpack encoding of the configuration. Two equal
// configurations always produce identical bytes.
func (c Configuration) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, []Position(c))
}

func (c *Configuration) Deserialize(r io.Reader) error {
	var ps []Position
	if err := msgpack.UnmarshalRead(r, &ps); err != nil {
		return err
	}
	*c = ps
	return nil
}

func (c Configuration) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, p := range c {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("]")
	return b.String()
}

// Occupancy is a set of occupied cells.
type Occupancy map[Position]struct{}

// NewOccupancy returns the cells held by every piece of cfg except piece
// `except`. Pass a negative index to include all pieces.
func NewOccupancy(cfg Configuration, except int) Occupancy {
	o := make(Occupancy, len(cfg))
	for i, p := range cfg {
		if i == except {
			continue
		}
		o[p] = struct{}{}
	}
	return o
}

func (o Occupancy) Has(p Position) bool {
	_, ok := o[p]
	return ok
}
