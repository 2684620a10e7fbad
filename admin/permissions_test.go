package admin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkfungible/fungible-go-base/types"
)

func Test_PermissionFlags_Validate(t *testing.T) {
	// exhaustive over the amount mode flags: exactly one must be set
	testCases := []struct {
		fixed  bool
		ranged bool
		ok     bool
	}{
		{fixed: false, ranged: false, ok: false},
		{fixed: false, ranged: true, ok: true},
		{fixed: true, ranged: false, ok: true},
		{fixed: true, ranged: true, ok: false},
	}

	for x, tc := range testCases {
		for _, unauthorized := range []bool{false, true} {
			f := PermissionFlags{Unauthorized: unauthorized, FixedAmount: tc.fixed, RangedAmount: tc.ranged}
			if tc.ok {
				require.NoError(t, f.Validate(), "test case [%d]", x)
			} else {
				require.ErrorIs(t, f.Validate(), ErrInvalidConfiguration, "test case [%d]", x)
			}
		}
	}
}

func Test_PackPermissions(t *testing.T) {
	t.Run("canonical bit layout", func(t *testing.T) {
		// mint {false, false, true} ‖ burn {true, false, true} must
		// produce exactly 0b001101, mint in the lower-offset bits and
		// fields in declaration order within each group
		pair := PackPermissions(DefaultMintPermissions, DefaultBurnPermissions)
		require.EqualValues(t, 0b001101, pair.Uint64())

		mint, burn, err := UnpackPermissions(pair)
		require.NoError(t, err)
		require.Equal(t, DefaultMintPermissions, mint)
		require.Equal(t, DefaultBurnPermissions, burn)
	})

	t.Run("pairing commutes", func(t *testing.T) {
		mint := MintPermissions{PermissionFlags{Unauthorized: true, FixedAmount: true}}
		burn := BurnPermissions{PermissionFlags{RangedAmount: true}}
		require.True(t, mint.PackWith(burn).Eq(burn.PackWith(mint)))
		require.True(t, mint.PackWith(burn).Eq(PackPermissions(mint, burn)))
	})

	t.Run("roundtrip", func(t *testing.T) {
		// every representable pair, valid or not - packing is layout
		// only, validation is a separate explicit step
		for v := uint64(0); v < 1<<PermissionPairWidth; v++ {
			mint, burn, err := UnpackPermissions(types.ScalarFromUint64(v))
			require.NoError(t, err)
			require.Equal(t, v, PackPermissions(mint, burn).Uint64(), "pair value %d", v)
		}
	})

	t.Run("oversized scalar is rejected", func(t *testing.T) {
		_, _, err := UnpackPermissions(types.ScalarFromUint64(1 << PermissionPairWidth))
		require.ErrorContains(t, err, "unpacking permission pair")
	})
}

func Test_Permissions_UpdatePacked(t *testing.T) {
	mint := MintPermissions{PermissionFlags{RangedAmount: true}}
	burn := BurnPermissions{PermissionFlags{Unauthorized: true, FixedAmount: true}}
	pair := PackPermissions(mint, burn)

	t.Run("mint half update preserves burn", func(t *testing.T) {
		newMint := MintPermissions{PermissionFlags{Unauthorized: true, FixedAmount: true}}
		updated, err := newMint.UpdatePacked(pair)
		require.NoError(t, err)

		m, b, err := UnpackPermissions(updated)
		require.NoError(t, err)
		require.Equal(t, newMint, m)
		require.Equal(t, burn, b)
		// the original pair is untouched
		require.EqualValues(t, PackPermissions(mint, burn).Uint64(), pair.Uint64())
	})

	t.Run("burn half update preserves mint", func(t *testing.T) {
		newBurn := BurnPermissions{PermissionFlags{RangedAmount: true}}
		updated, err := newBurn.UpdatePacked(pair)
		require.NoError(t, err)

		m, b, err := UnpackPermissions(updated)
		require.NoError(t, err)
		require.Equal(t, mint, m)
		require.Equal(t, newBurn, b)
	})

	t.Run("oversized scalar is rejected", func(t *testing.T) {
		_, err := mint.UpdatePacked(types.ScalarFromUint64(1 << PermissionPairWidth))
		require.ErrorContains(t, err, "updating mint half")

		_, err = burn.UpdatePacked(types.ScalarFromUint64(1 << PermissionPairWidth))
		require.ErrorContains(t, err, "updating burn half")
	})
}

func Test_DefaultPermissions(t *testing.T) {
	require.NoError(t, DefaultMintPermissions.Validate())
	require.NoError(t, DefaultBurnPermissions.Validate())

	// minting needs the admin signature by default, burning doesn't
	require.False(t, DefaultMintPermissions.Unauthorized)
	require.True(t, DefaultBurnPermissions.Unauthorized)
}
