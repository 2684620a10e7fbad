/*
Package hash implements the digest calculation used to commit to
configuration state. Values written to the hasher are serialized as
deterministic CBOR before hashing so the digest of a given state is
well defined across implementations.
*/
package hash

import (
	"fmt"
	"hash"

	"github.com/fxamacker/cbor/v2"
)

type Hasher interface {
	// Write serializes the argument as CBOR and adds it to the hash.
	Write(any)
	// WriteRaw adds the argument as is, without additional encoding.
	WriteRaw([]byte)
	// Sum returns the digest and the first error (if any) that happened
	// while writing. On non-nil error the digest is not valid.
	Sum() ([]byte, error)
}

/*
New creates a hash calculator using the given hash function.
*/
func New(h hash.Hash) *Hash {
	return &Hash{h: h, enc: encoderMode.NewEncoder(h)}
}

type Hash struct {
	h   hash.Hash
	enc *cbor.Encoder
	err error
}

func (h *Hash) Write(v any) {
	if h.err != nil {
		return
	}
	h.err = h.enc.Encode(v)
}

func (h *Hash) WriteRaw(d []byte) {
	if h.err != nil {
		return
	}
	_, h.err = h.h.Write(d)
}

func (h *Hash) Sum() ([]byte, error) {
	return h.h.Sum(nil), h.err
}

/*
Sum is a convenience for hashing a list of values with the given hash
function in one call.
*/
func Sum(h hash.Hash, values ...any) ([]byte, error) {
	hasher := New(h)
	for _, v := range values {
		hasher.Write(v)
	}
	return hasher.Sum()
}

var encoderMode cbor.EncMode

func init() {
	// it is extremely unlikely that building encoder mode from options
	// provided by the CBOR library fails (ie memory corruption...)
	var err error
	if encoderMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Errorf("initializing CBOR encoder mode: %w", err))
	}
}
