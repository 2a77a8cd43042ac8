package rebalance

import (
	"fmt"
	"strings"
)

// Asset represents a single holding: a number of shares of one symbol at a
// unit market price. Its class is resolved once, at construction, from the
// classification policy. Everything but the share count is immutable.
type Asset struct {
	symbol      string // normalized upper-case ticker
	price       Money  // unit price, rounded to the currency fraction
	quantity    int64  // whole shares held
	description string // free text, not used in calculations
	class       AssetClass
	classified  bool
}

// NewAsset creates an asset from a raw position record.
// The symbol is normalized to upper case and the price rounded to cents.
// Symbols outside the policy universe stay unclassified: they contribute to
// the portfolio's total value but to no class bucket.
func NewAsset(policy Policy, symbol string, price Money, quantity int64, description string) (Asset, error) {
	if price.IsNegative() {
		return Asset{}, fmt.Errorf("asset %s: negative price %s", symbol, price)
	}
	if quantity < 0 {
		return Asset{}, fmt.Errorf("asset %s: negative quantity %d", symbol, quantity)
	}
	a := Asset{
		symbol:      strings.ToUpper(symbol),
		price:       price.Round(),
		quantity:    quantity,
		description: description,
	}
	a.class, a.classified = policy.Classify(a.symbol)
	return a, nil
}

// Symbol returns the normalized ticker symbol.
func (a Asset) Symbol() string { return a.symbol }

// Price returns the unit market price.
func (a Asset) Price() Money { return a.price }

// Quantity returns the number of shares held.
func (a Asset) Quantity() int64 { return a.quantity }

// Description returns the free-text label of the asset.
func (a Asset) Description() string { return a.description }

// Class returns the asset class, and whether the symbol was in the policy
// universe at all.
func (a Asset) Class() (AssetClass, bool) { return a.class, a.classified }

// Value returns the market value of the holding: quantity times unit price.
func (a Asset) Value() Money { return a.price.Mul(a.quantity) }

// withQuantity returns a copy of the asset holding a different share count.
func (a Asset) withQuantity(quantity int64) Asset {
	a.quantity = quantity
	return a
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %d @ %s", a.symbol, a.quantity, a.price)
}
