// Package cas is a small content-addressed store. Items are serialized to
// msgpack and addressed by the farm hash of those bytes, so two structurally
// equal items always land on the same entry.
package cas

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-farm"
)

type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// Hashable is anything that can write a canonical byte encoding of itself.
// Equal values must serialize to identical bytes.
type Hashable interface {
	Serialize(w io.Writer) error
}

type CAS interface {
	Put(item Hashable) (Hash, error)
	Has(hash Hash) bool
	// Contains reports whether an item with identical bytes has been stored.
	// Unlike Has it is not fooled by hash collisions.
	Contains(item Hashable) (bool, error)
	Len() int
}

// HashOf serializes item and returns its hash along with the encoded bytes.
func HashOf(item Hashable) (Hash, []byte, error) {
	var buf bytes.Buffer
	if err := item.Serialize(&buf); err != nil {
		return 0, nil, fmt.Errorf("serializing item: %w", err)
	}
	data := buf.Bytes()
	return Hash(farm.Hash64(data)), data, nil
}
