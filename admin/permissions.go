package admin

import (
	"fmt"

	"github.com/zkfungible/fungible-go-base/types"
)

const (
	// PermissionFlagWidth is the bit width of one permission flag group.
	PermissionFlagWidth = 3
	// PermissionPairWidth is the bit width of the packed mint+burn pair.
	PermissionPairWidth = 2 * PermissionFlagWidth
)

type (
	/*
		PermissionFlags controls who may mint or burn and in which amount
		mode. Exactly one of the amount mode flags must be set — a group
		with both or neither set is invalid and must be rejected by
		Validate before it is trusted.
	*/
	PermissionFlags struct {
		_            struct{} `cbor:",toarray"`
		Unauthorized bool     `json:"unauthorized"` // the operation does not require the admin signature
		FixedAmount  bool     `json:"fixedAmount"`  // amounts must equal the configured fixed amount
		RangedAmount bool     `json:"rangedAmount"` // amounts must fall into the configured [min, max] range
	}

	// MintPermissions is the permission flag group governing minting.
	MintPermissions struct{ PermissionFlags }
	// BurnPermissions is the permission flag group governing burning.
	BurnPermissions struct{ PermissionFlags }
)

// Bits returns the group's bits in field declaration order, most
// significant first.
func (f PermissionFlags) Bits() types.Bits {
	return types.Bits{f.Unauthorized, f.FixedAmount, f.RangedAmount}
}

func permissionsFromBits(b types.Bits) PermissionFlags {
	_ = b[PermissionFlagWidth-1]
	return PermissionFlags{
		Unauthorized: b[0],
		FixedAmount:  b[1],
		RangedAmount: b[2],
	}
}

/*
Validate checks the exactly-one-of invariant of the amount mode flags.
The check is arithmetic: the sum of the two flags must be exactly one.
*/
func (f PermissionFlags) Validate() error {
	if flagSum(f.FixedAmount, f.RangedAmount) != 1 {
		return fmt.Errorf("%w: exactly one of the fixed and ranged amount flags must be set", ErrInvalidConfiguration)
	}
	return nil
}

func flagSum(flags ...bool) (n int) {
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// PackPermissions packs the sibling groups into the canonical pair
// scalar, mint in the lower-offset bits.
func PackPermissions(mint MintPermissions, burn BurnPermissions) types.Scalar {
	return packPair(mint.Bits(), burn.Bits())
}

/*
UnpackPermissions splits a packed pair scalar back into the mint and
burn groups. A scalar with significant bits beyond the pair width is
rejected. The groups are not validated — the caller must run Validate
before trusting them.
*/
func UnpackPermissions(pair types.Scalar) (MintPermissions, BurnPermissions, error) {
	mintBits, err := pairHalf(pair, PermissionFlagWidth, mintRole)
	if err != nil {
		return MintPermissions{}, BurnPermissions{}, fmt.Errorf("unpacking permission pair: %w", err)
	}
	burnBits, err := pairHalf(pair, PermissionFlagWidth, burnRole)
	if err != nil {
		return MintPermissions{}, BurnPermissions{}, fmt.Errorf("unpacking permission pair: %w", err)
	}
	return MintPermissions{permissionsFromBits(mintBits)}, BurnPermissions{permissionsFromBits(burnBits)}, nil
}

// PackWith packs this group with its sibling; produces the same scalar
// regardless of which sibling initiates the call.
func (m MintPermissions) PackWith(burn BurnPermissions) types.Scalar {
	return PackPermissions(m, burn)
}

func (b BurnPermissions) PackWith(mint MintPermissions) types.Scalar {
	return PackPermissions(mint, b)
}

// UpdatePacked replaces the mint half of an existing pair scalar with
// this group's bits, the burn half is preserved unchanged.
func (m MintPermissions) UpdatePacked(pair types.Scalar) (types.Scalar, error) {
	return replaceHalf(pair, PermissionFlagWidth, mintRole, m.Bits())
}

// UpdatePacked replaces the burn half of an existing pair scalar with
// this group's bits, the mint half is preserved unchanged.
func (b BurnPermissions) UpdatePacked(pair types.Scalar) (types.Scalar, error) {
	return replaceHalf(pair, PermissionFlagWidth, burnRole, b.Bits())
}
