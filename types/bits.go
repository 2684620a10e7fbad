package types

import "fmt"

/*
Bits is an ordered sequence of single-bit values with a fixed declared
width. Offset 0 is the most significant bit of the packed value, ie the
sequence read left to right is the big-endian binary representation of
the scalar it packs into.
*/
type Bits []bool

const uint64Width = 64

/*
Scalar packs the bit sequence into a scalar value.
Panics if the sequence is wider than a storage slot — widths are
compile-time constants of the layout, not runtime input.
*/
func (b Bits) Scalar() Scalar {
	if len(b) > ScalarWidth {
		panic(fmt.Sprintf("bit sequence of %d bits does not fit into a %d bit scalar", len(b), ScalarWidth))
	}
	var s Scalar
	for i, bit := range b {
		if bit {
			n := uint(len(b) - 1 - i)
			s.v[n/64] |= 1 << (n % 64)
		}
	}
	return s
}

/*
Slice returns a copy of the "width" bits starting at "offset".
Panics if the window is out of bounds.
*/
func (b Bits) Slice(offset, width uint) Bits {
	out := make(Bits, width)
	copy(out, b[offset:offset+width])
	return out
}

/*
Replace returns a new sequence where the bits [offset, offset+len(sub))
are substituted with "sub" and all other bits are kept as is. The input
sequences are not modified.
*/
func (b Bits) Replace(offset uint, sub Bits) Bits {
	if offset+uint(len(sub)) > uint(len(b)) {
		panic(fmt.Sprintf("replacing %d bits at offset %d exceeds the %d bit sequence", len(sub), offset, len(b)))
	}
	out := make(Bits, len(b))
	copy(out, b[:offset])
	copy(out[offset:], sub)
	copy(out[offset+uint(len(sub)):], b[offset+uint(len(sub)):])
	return out
}

/*
Uint64 reconstructs an unsigned integer from a bit window of up to 64
bits, most significant bit first.
*/
func (b Bits) Uint64() uint64 {
	if len(b) > uint64Width {
		panic(fmt.Sprintf("bit sequence of %d bits does not fit into uint64", len(b)))
	}
	var v uint64
	for _, bit := range b {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

// Uint64Bits returns the 64 bit window encoding of v, most significant bit first.
func Uint64Bits(v uint64) Bits {
	b := make(Bits, uint64Width)
	for i := range b {
		b[i] = v>>(uint64Width-1-i)&1 == 1
	}
	return b
}

func (b Bits) String() (s string) {
	for _, bit := range b {
		if bit {
			s += "1"
		} else {
			s += "0"
		}
	}
	return s
}
