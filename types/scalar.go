package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/zkfungible/fungible-go-base/cbor"
)

// ScalarWidth is the bit width of a contract storage slot.
const ScalarWidth = 256

/*
Scalar is the value of a single contract storage slot. The host state
machine persists a small fixed number of wide scalars per contract;
several configuration groups are packed into one scalar to keep the
persisted state minimal. All packed layouts (6, 12 and 192 bit families)
fit into one slot.

Scalar is an immutable value type, operations return new values.
*/
type Scalar struct {
	v uint256.Int
}

func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.v.SetUint64(v)
	return s
}

func ScalarFromHex(src string) (s Scalar, err error) {
	if err := s.UnmarshalText([]byte(src)); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

/*
Bits converts the scalar to its bit sequence of the given width, most
significant bit first. It fails when the scalar has significant bits
beyond the declared width — a value that does not fit the layout it is
claimed to use is rejected rather than silently truncated.
*/
func (s Scalar) Bits(width uint) (Bits, error) {
	if bl := uint(s.v.BitLen()); bl > width {
		return nil, fmt.Errorf("scalar has %d significant bits, the layout is %d bits wide", bl, width)
	}
	b := make(Bits, width)
	for i := uint(0); i < width; i++ {
		n := width - 1 - i
		b[i] = s.v[n/64]>>(n%64)&1 == 1
	}
	return b, nil
}

// Uint64 returns the low 64 bits of the scalar.
func (s Scalar) Uint64() uint64 {
	return s.v.Uint64()
}

func (s Scalar) Eq(v Scalar) bool {
	return s.v.Eq(&v.v)
}

func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s Scalar) String() string {
	return hexutil.Encode(s.v.Bytes())
}

func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(s.v.Bytes())), nil
}

func (s *Scalar) UnmarshalText(src []byte) error {
	b, err := hexutil.Decode(string(src))
	if err != nil {
		return fmt.Errorf("decoding scalar from hex: %w", err)
	}
	if len(b) > ScalarWidth/8 {
		return fmt.Errorf("scalar must be at most %d bytes, got %d bytes", ScalarWidth/8, len(b))
	}
	s.v.SetBytes(b)
	return nil
}

// MarshalCBOR encodes the scalar as its minimal big-endian byte string.
func (s Scalar) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.v.Bytes())
}

func (s *Scalar) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("decoding scalar bytes from CBOR: %w", err)
	}
	if len(b) > ScalarWidth/8 {
		return fmt.Errorf("scalar must be at most %d bytes, got %d bytes", ScalarWidth/8, len(b))
	}
	s.v.SetBytes(b)
	return nil
}
