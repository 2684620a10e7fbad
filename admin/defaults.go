package admin

import "math"

/*
Named default configurations. The defaults are a permissive but safe
baseline: minting needs the admin signature, burning doesn't, both use
the ranged amount mode with an unrestricted range, and dynamic proof
verification is off while all its match requirements default to on (so
enabling ShouldVerify later does not silently skip any check).

The values are plain data, copy semantics apply at every use site.
*/
var (
	DefaultMintPermissions = MintPermissions{PermissionFlags{
		Unauthorized: false,
		FixedAmount:  false,
		RangedAmount: true,
	}}

	DefaultBurnPermissions = BurnPermissions{PermissionFlags{
		Unauthorized: true,
		FixedAmount:  false,
		RangedAmount: true,
	}}

	DefaultMintProofFlags = MintProofFlags{defaultProofFlags}
	DefaultBurnProofFlags = BurnProofFlags{defaultProofFlags}

	DefaultMintAmountRange = AmountRange{FixedAmount: 0, MinAmount: 0, MaxAmount: math.MaxUint64}
	DefaultBurnAmountRange = AmountRange{FixedAmount: 0, MinAmount: 0, MaxAmount: math.MaxUint64}
)

var defaultProofFlags = DynamicProofFlags{
	ShouldVerify:                   false,
	RequireTokenIDMatch:            true,
	RequireMinaBalanceMatch:        true,
	RequireCustomTokenBalanceMatch: true,
	RequireMinaNonceMatch:          true,
	RequireCustomTokenNonceMatch:   true,
}
