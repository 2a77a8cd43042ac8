package rebalance

import "errors"

// The error taxonomy of the package. All errors are surfaced immediately to
// the caller: this is a single-pass offline computation with no retry or
// partial recovery.
var (
	// ErrUnknownAsset reports a buy against a symbol that is not held.
	// Rebalancing only ever adds to existing positions.
	ErrUnknownAsset = errors.New("no owned shares for symbol")

	// ErrNoTarget reports an asset class with no configured target
	// percentage. This indicates an incomplete classification policy, a
	// programming or configuration error rather than bad user data.
	ErrNoTarget = errors.New("no target percentage configured for class")

	// ErrZeroTotalValue reports a percentage computation against a
	// portfolio whose total value is zero.
	ErrZeroTotalValue = errors.New("portfolio total value is zero")

	// ErrNonPositivePrice reports an asset priced at or below zero.
	// The allocator requires strictly positive prices to terminate.
	ErrNonPositivePrice = errors.New("asset price is not positive")

	// ErrStalled reports an allocation loop that stopped consuming cash.
	ErrStalled = errors.New("rebalance stalled before exhausting budget")
)
