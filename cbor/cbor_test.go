package cbor

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	_     struct{} `cbor:",toarray"`
	Name  string
	Value uint64
}

func Test_Marshal(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		in := testRecord{Name: "mint", Value: 42}
		buf, err := Marshal(in)
		require.NoError(t, err)

		var out testRecord
		require.NoError(t, Unmarshal(buf, &out))
		require.Equal(t, in, out)
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		in := map[string]uint64{"burn": 2, "mint": 1, "admin": 3}
		buf1, err := Marshal(in)
		require.NoError(t, err)
		buf2, err := Marshal(in)
		require.NoError(t, err)
		require.Equal(t, buf1, buf2)
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if _, err := Marshal(testRecord{Name: "mint", Value: uint64(j)}); err != nil {
						t.Error("marshal failed:", err)
					}
				}
			}()
		}
		wg.Wait()
	})
}

func Test_MarshalVersioned(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		in := testRecord{Name: "mint", Value: 42}
		buf, err := MarshalVersioned(2, in)
		require.NoError(t, err)

		ver, payload, err := UnmarshalVersioned(buf)
		require.NoError(t, err)
		require.EqualValues(t, 2, ver)

		var out testRecord
		require.NoError(t, Unmarshal(payload, &out))
		require.Equal(t, in, out)
	})

	t.Run("nil version is rejected", func(t *testing.T) {
		_, err := MarshalVersioned(NilVersion, testRecord{})
		require.EqualError(t, err, "version is nil")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := UnmarshalVersioned([]byte("not CBOR"))
		require.ErrorContains(t, err, "failed to decode version")

		// valid version prefix but the payload is missing
		buf, err := Marshal(Version(1))
		require.NoError(t, err)
		_, _, err = UnmarshalVersioned(buf)
		require.ErrorContains(t, err, "failed to decode payload")
	})
}

func Test_RawCBOR(t *testing.T) {
	t.Run("empty value encodes as nil marker", func(t *testing.T) {
		buf, err := Marshal(RawCBOR{})
		require.NoError(t, err)
		require.Equal(t, []byte{0xf6}, buf)
	})

	t.Run("payload is carried as is", func(t *testing.T) {
		inner, err := Marshal(testRecord{Name: "burn", Value: 7})
		require.NoError(t, err)

		buf, err := Marshal(RawCBOR(inner))
		require.NoError(t, err)
		require.Equal(t, inner, buf)

		var out RawCBOR
		require.NoError(t, Unmarshal(buf, &out))
		require.EqualValues(t, inner, out)
	})

	t.Run("nil marker decodes as empty", func(t *testing.T) {
		out := RawCBOR{1, 2, 3}
		require.NoError(t, Unmarshal([]byte{0xf6}, &out))
		require.Empty(t, out)
	})
}

func Test_EncodeDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(buf, testRecord{Name: "a", Value: 1}))
	require.NoError(t, Encode(buf, testRecord{Name: "b", Value: 2}))

	var first, second testRecord
	dec := GetDecoder(buf)
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, testRecord{Name: "a", Value: 1}, first)
	require.Equal(t, testRecord{Name: "b", Value: 2}, second)
}
