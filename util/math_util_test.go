package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeAdd(t *testing.T) {
	res, ok := SafeAdd(10, 10)
	require.True(t, ok)
	require.EqualValues(t, 20, res)

	res, ok = SafeAdd(math.MaxUint64, 0)
	require.True(t, ok)
	require.EqualValues(t, uint64(math.MaxUint64), res)

	_, ok = SafeAdd(math.MaxUint64, 1)
	require.False(t, ok)

	_, ok = SafeAdd(math.MaxUint64-1, 2)
	require.False(t, ok)
}

func TestSafeSub(t *testing.T) {
	res, ok := SafeSub(10, 10)
	require.True(t, ok)
	require.EqualValues(t, 0, res)

	res, ok = SafeSub(1000, 1)
	require.True(t, ok)
	require.EqualValues(t, 999, res)

	_, ok = SafeSub(10, 11)
	require.False(t, ok)
}
