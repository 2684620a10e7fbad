package admin

import (
	"fmt"

	"github.com/zkfungible/fungible-go-base/types"
)

/*
Both flag-group families (permission flags and dynamic-proof flags) are
persisted as mint+burn pairs packed into one scalar: the mint group
occupies the lower-offset bits of the sequence, the burn group the bits
right after it. The pair codec below is written once, parameterized by
the group width, so the two families share the exact same algorithm.
*/

type role uint8

const (
	mintRole role = iota
	burnRole
)

func (r role) String() string {
	if r == mintRole {
		return "mint"
	}
	return "burn"
}

func (r role) offset(groupWidth uint) uint {
	if r == mintRole {
		return 0
	}
	return groupWidth
}

// packPair concatenates mint ‖ burn bits and packs the result.
func packPair(mint, burn types.Bits) types.Scalar {
	seq := make(types.Bits, 0, len(mint)+len(burn))
	seq = append(seq, mint...)
	seq = append(seq, burn...)
	return seq.Scalar()
}

// pairHalf slices one group's bits out of a packed pair scalar.
func pairHalf(pair types.Scalar, groupWidth uint, r role) (types.Bits, error) {
	seq, err := pair.Bits(2 * groupWidth)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s half: %w", r, err)
	}
	return seq.Slice(r.offset(groupWidth), groupWidth), nil
}

/*
replaceHalf substitutes one group's bits within a packed pair scalar,
leaving the sibling group's bits unchanged. The input scalar is not
modified, a new scalar is returned.
*/
func replaceHalf(pair types.Scalar, groupWidth uint, r role, group types.Bits) (types.Scalar, error) {
	seq, err := pair.Bits(2 * groupWidth)
	if err != nil {
		return types.Scalar{}, fmt.Errorf("updating %s half: %w", r, err)
	}
	return seq.Replace(r.offset(groupWidth), group).Scalar(), nil
}
