package admin

import (
	"fmt"

	"github.com/zkfungible/fungible-go-base/types"
	"github.com/zkfungible/fungible-go-base/util"
)

const (
	amountFieldWidth = 64
	// AmountRangeWidth is the bit width of a packed amount range.
	AmountRangeWidth = 3 * amountFieldWidth
)

/*
AmountRange bounds the amounts a mint or burn operation may use: the
exact amount of the fixed mode and the inclusive [min, max] window of
the ranged mode. Which bound applies is selected by the sibling
PermissionFlags group. Mint and burn ranges are persisted in separate
slots, there is no pair layout for this family.
*/
type AmountRange struct {
	_           struct{} `cbor:",toarray"`
	FixedAmount uint64   `json:"fixedAmount,string"` // the only amount allowed in fixed mode
	MinAmount   uint64   `json:"minAmount,string"`   // lowest amount allowed in ranged mode
	MaxAmount   uint64   `json:"maxAmount,string"`   // highest amount allowed in ranged mode
}

// Bits returns the three 64 bit windows in field declaration order,
// each window most significant bit first.
func (r AmountRange) Bits() types.Bits {
	seq := make(types.Bits, 0, AmountRangeWidth)
	seq = append(seq, types.Uint64Bits(r.FixedAmount)...)
	seq = append(seq, types.Uint64Bits(r.MinAmount)...)
	seq = append(seq, types.Uint64Bits(r.MaxAmount)...)
	return seq
}

// Pack packs the range into its 192 bit scalar.
func (r AmountRange) Pack() types.Scalar {
	return r.Bits().Scalar()
}

/*
UnpackAmountRange slices the scalar's bit sequence into three
consecutive 64 bit windows and reconstructs the range. A scalar with
significant bits beyond the 192 bit layout is rejected. The range is
not validated — the caller must run Validate before trusting it.
*/
func UnpackAmountRange(s types.Scalar) (AmountRange, error) {
	seq, err := s.Bits(AmountRangeWidth)
	if err != nil {
		return AmountRange{}, fmt.Errorf("unpacking amount range: %w", err)
	}
	return AmountRange{
		FixedAmount: seq.Slice(0, amountFieldWidth).Uint64(),
		MinAmount:   seq.Slice(amountFieldWidth, amountFieldWidth).Uint64(),
		MaxAmount:   seq.Slice(2*amountFieldWidth, amountFieldWidth).Uint64(),
	}, nil
}

// Validate checks that MinAmount is strictly less than MaxAmount.
func (r AmountRange) Validate() error {
	if r.MinAmount >= r.MaxAmount {
		return fmt.Errorf("%w: min amount %d must be less than max amount %d", ErrInvalidRange, r.MinAmount, r.MaxAmount)
	}
	return nil
}

// Span returns MaxAmount-MinAmount, ie the width of the ranged mode
// window, and false on underflow.
func (r AmountRange) Span() (uint64, bool) {
	return util.SafeSub(r.MaxAmount, r.MinAmount)
}

/*
Allows reports whether the amount is admissible under the flag group's
amount mode: equality against FixedAmount in fixed mode, inclusive
bounds in ranged mode. Both the flags and the range are validated
first, an amount is never admitted by an invalid configuration.
*/
func Allows(flags PermissionFlags, r AmountRange, amount uint64) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if flags.FixedAmount {
		if amount != r.FixedAmount {
			return fmt.Errorf("%w: amount %d does not equal the fixed amount %d", ErrAmountNotAllowed, amount, r.FixedAmount)
		}
		return nil
	}
	if amount < r.MinAmount || amount > r.MaxAmount {
		return fmt.Errorf("%w: amount %d is outside the range [%d, %d]", ErrAmountNotAllowed, amount, r.MinAmount, r.MaxAmount)
	}
	return nil
}
