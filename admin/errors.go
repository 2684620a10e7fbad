package admin

import "errors"

var (
	// ErrInvalidConfiguration is returned when a flag group does not
	// select exactly one amount mode.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidRange is returned when an amount range has
	// MinAmount >= MaxAmount.
	ErrInvalidRange = errors.New("invalid range")

	// ErrAmountNotAllowed is returned when a concrete amount is rejected
	// by the configured amount mode.
	ErrAmountNotAllowed = errors.New("amount not allowed")
)
