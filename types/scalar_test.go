package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkfungible/fungible-go-base/cbor"
)

func Test_Scalar_Bits(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		for width := uint(1); width <= 16; width++ {
			for v := uint64(0); v < 1<<width; v++ {
				b, err := ScalarFromUint64(v).Bits(width)
				require.NoError(t, err)
				require.Len(t, b, int(width))
				require.Equal(t, v, b.Scalar().Uint64(), "width %d value %d", width, v)
			}
		}
	})

	t.Run("value narrower than the width is zero filled", func(t *testing.T) {
		b, err := ScalarFromUint64(1).Bits(6)
		require.NoError(t, err)
		require.Equal(t, Bits{false, false, false, false, false, true}, b)
	})

	t.Run("significant bits beyond the width fail closed", func(t *testing.T) {
		_, err := ScalarFromUint64(1 << 6).Bits(6)
		require.EqualError(t, err, "scalar has 7 significant bits, the layout is 6 bits wide")

		// the widest value that still fits
		b, err := ScalarFromUint64(1<<6 - 1).Bits(6)
		require.NoError(t, err)
		require.Equal(t, Bits{true, true, true, true, true, true}, b)
	})
}

func Test_Scalar_Text(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		buf, err := ScalarFromUint64(0b001101).MarshalText()
		require.NoError(t, err)
		require.Equal(t, "0x0d", string(buf))
	})

	t.Run("roundtrip", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 13, 2015, ^uint64(0)} {
			in := ScalarFromUint64(v)
			buf, err := in.MarshalText()
			require.NoError(t, err)
			out, err := ScalarFromHex(string(buf))
			require.NoError(t, err)
			require.True(t, in.Eq(out), "value %d", v)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := ScalarFromHex("0d")
		require.Error(t, err)

		_, err = ScalarFromHex("0xzz")
		require.Error(t, err)

		// 33 bytes does not fit into a slot
		src := "0x01"
		for i := 0; i < 32; i++ {
			src += "00"
		}
		_, err = ScalarFromHex(src)
		require.EqualError(t, err, "scalar must be at most 32 bytes, got 33 bytes")
	})
}

func Test_Scalar_CBOR(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		for _, v := range []uint64{0, 1, 13, 2015, ^uint64(0)} {
			in := ScalarFromUint64(v)
			buf, err := cbor.Marshal(in)
			require.NoError(t, err)
			var out Scalar
			require.NoError(t, cbor.Unmarshal(buf, &out))
			require.True(t, in.Eq(out), "value %d", v)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		buf, err := cbor.Marshal(make([]byte, 33))
		require.NoError(t, err)
		var out Scalar
		require.EqualError(t, out.UnmarshalCBOR(buf), "scalar must be at most 32 bytes, got 33 bytes")
	})
}

func Test_Scalar_Eq(t *testing.T) {
	require.True(t, ScalarFromUint64(42).Eq(ScalarFromUint64(42)))
	require.False(t, ScalarFromUint64(42).Eq(ScalarFromUint64(43)))

	require.True(t, Scalar{}.IsZero())
	require.True(t, ScalarFromUint64(0).Eq(Scalar{}))
	require.False(t, ScalarFromUint64(1).IsZero())
}
