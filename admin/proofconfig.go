package admin

import (
	"fmt"

	"github.com/zkfungible/fungible-go-base/types"
)

const (
	// ProofFlagWidth is the bit width of one dynamic-proof flag group.
	ProofFlagWidth = 6
	// ProofPairWidth is the bit width of the packed mint+burn pair.
	ProofPairWidth = 2 * ProofFlagWidth
)

type (
	/*
		DynamicProofFlags controls the side-loaded proof verification of a
		mint or burn operation: whether a proof is verified at all and
		which public inputs of the proof must match the on-chain account
		state at verification time.
	*/
	DynamicProofFlags struct {
		_                              struct{} `cbor:",toarray"`
		ShouldVerify                   bool     `json:"shouldVerify"`                   // verify the side-loaded proof at all
		RequireTokenIDMatch            bool     `json:"requireTokenIdMatch"`            // proof token id must match the contract's token id
		RequireMinaBalanceMatch        bool     `json:"requireMinaBalanceMatch"`        // proof base-currency balance must match the account
		RequireCustomTokenBalanceMatch bool     `json:"requireCustomTokenBalanceMatch"` // proof token balance must match the account
		RequireMinaNonceMatch          bool     `json:"requireMinaNonceMatch"`          // proof base-currency account nonce must match
		RequireCustomTokenNonceMatch   bool     `json:"requireCustomTokenNonceMatch"`   // proof token account nonce must match
	}

	// MintProofFlags is the dynamic-proof flag group governing minting.
	MintProofFlags struct{ DynamicProofFlags }
	// BurnProofFlags is the dynamic-proof flag group governing burning.
	BurnProofFlags struct{ DynamicProofFlags }
)

// Bits returns the group's bits in field declaration order, most
// significant first.
func (f DynamicProofFlags) Bits() types.Bits {
	return types.Bits{
		f.ShouldVerify,
		f.RequireTokenIDMatch,
		f.RequireMinaBalanceMatch,
		f.RequireCustomTokenBalanceMatch,
		f.RequireMinaNonceMatch,
		f.RequireCustomTokenNonceMatch,
	}
}

func proofFlagsFromBits(b types.Bits) DynamicProofFlags {
	_ = b[ProofFlagWidth-1]
	return DynamicProofFlags{
		ShouldVerify:                   b[0],
		RequireTokenIDMatch:            b[1],
		RequireMinaBalanceMatch:        b[2],
		RequireCustomTokenBalanceMatch: b[3],
		RequireMinaNonceMatch:          b[4],
		RequireCustomTokenNonceMatch:   b[5],
	}
}

// PackProofConfig packs the sibling groups into the canonical pair
// scalar, mint in the lower-offset bits.
func PackProofConfig(mint MintProofFlags, burn BurnProofFlags) types.Scalar {
	return packPair(mint.Bits(), burn.Bits())
}

// UnpackProofConfig splits a packed pair scalar back into the mint and
// burn groups. A scalar with significant bits beyond the pair width is
// rejected.
func UnpackProofConfig(pair types.Scalar) (MintProofFlags, BurnProofFlags, error) {
	mintBits, err := pairHalf(pair, ProofFlagWidth, mintRole)
	if err != nil {
		return MintProofFlags{}, BurnProofFlags{}, fmt.Errorf("unpacking proof config pair: %w", err)
	}
	burnBits, err := pairHalf(pair, ProofFlagWidth, burnRole)
	if err != nil {
		return MintProofFlags{}, BurnProofFlags{}, fmt.Errorf("unpacking proof config pair: %w", err)
	}
	return MintProofFlags{proofFlagsFromBits(mintBits)}, BurnProofFlags{proofFlagsFromBits(burnBits)}, nil
}

func (m MintProofFlags) PackWith(burn BurnProofFlags) types.Scalar {
	return PackProofConfig(m, burn)
}

func (b BurnProofFlags) PackWith(mint MintProofFlags) types.Scalar {
	return PackProofConfig(mint, b)
}

// UpdatePacked replaces the mint half of an existing pair scalar with
// this group's bits, the burn half is preserved unchanged.
func (m MintProofFlags) UpdatePacked(pair types.Scalar) (types.Scalar, error) {
	return replaceHalf(pair, ProofFlagWidth, mintRole, m.Bits())
}

// UpdatePacked replaces the burn half of an existing pair scalar with
// this group's bits, the mint half is preserved unchanged.
func (b BurnProofFlags) UpdatePacked(pair types.Scalar) (types.Scalar, error) {
	return replaceHalf(pair, ProofFlagWidth, burnRole, b.Bits())
}
