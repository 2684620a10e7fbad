package admin

import (
	"crypto/rand"
	"testing"

	"github.com/zkfungible/fungible-go-base/admin"
	"github.com/zkfungible/fungible-go-base/util"
)

/*
RandomPermissions generates a valid-looking permission flag group: the
amount mode is picked so the exactly-one-of invariant holds, the
unauthorized flag is random.
*/
func RandomPermissions(t *testing.T) admin.PermissionFlags {
	fixed := randomBool(t)
	return admin.PermissionFlags{
		Unauthorized: randomBool(t),
		FixedAmount:  fixed,
		RangedAmount: !fixed,
	}
}

func RandomMintPermissions(t *testing.T) admin.MintPermissions {
	return admin.MintPermissions{PermissionFlags: RandomPermissions(t)}
}

func RandomBurnPermissions(t *testing.T) admin.BurnPermissions {
	return admin.BurnPermissions{PermissionFlags: RandomPermissions(t)}
}

// RandomProofFlags generates a proof flag group with every flag random,
// the family has no structural invariant.
func RandomProofFlags(t *testing.T) admin.DynamicProofFlags {
	return admin.DynamicProofFlags{
		ShouldVerify:                   randomBool(t),
		RequireTokenIDMatch:            randomBool(t),
		RequireMinaBalanceMatch:        randomBool(t),
		RequireCustomTokenBalanceMatch: randomBool(t),
		RequireMinaNonceMatch:          randomBool(t),
		RequireCustomTokenNonceMatch:   randomBool(t),
	}
}

func RandomMintProofFlags(t *testing.T) admin.MintProofFlags {
	return admin.MintProofFlags{DynamicProofFlags: RandomProofFlags(t)}
}

func RandomBurnProofFlags(t *testing.T) admin.BurnProofFlags {
	return admin.BurnProofFlags{DynamicProofFlags: RandomProofFlags(t)}
}

/*
RandomAmountRange generates a valid amount range, ie MinAmount is
strictly less than MaxAmount.
*/
func RandomAmountRange(t *testing.T) admin.AmountRange {
	min := randomUint64(t) >> 1 // leave room for the span
	span := randomUint64(t)>>1 | 1
	max, ok := util.SafeAdd(min, span)
	if !ok {
		t.Fatalf("amount range construction overflows: min %d span %d", min, span)
	}
	return admin.AmountRange{
		FixedAmount: randomUint64(t),
		MinAmount:   min,
		MaxAmount:   max,
	}
}

func randomBool(t *testing.T) bool {
	var buf [1]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatal("failed to generate random flag:", err)
	}
	return buf[0]&1 == 1
}

func randomUint64(t *testing.T) uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatal("failed to generate random amount:", err)
	}
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v
}
