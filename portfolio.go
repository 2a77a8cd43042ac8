package rebalance

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Portfolio is a snapshot of holdings plus a cached total value.
//
// The total value cache follows a manual recompute contract: it is valid
// only immediately after construction or a call to UpdateTotalValue. Every
// mutating method of this type recomputes it itself, so through the public
// API the cache is never stale.
type Portfolio struct {
	policy Policy
	assets []Asset

	totalValue Money
}

// NewPortfolio creates a portfolio from an explicit asset list and computes
// its total value. Symbols are expected to be unique within a portfolio;
// duplicates are a caller error and are not validated, lookups then resolve
// to the first match.
func NewPortfolio(policy Policy, assets []Asset) *Portfolio {
	p := &Portfolio{policy: policy, assets: slices.Clone(assets)}
	p.UpdateTotalValue()
	return p
}

// Policy returns the classification policy the portfolio was built with.
func (p *Portfolio) Policy() Policy { return p.policy }

// UpdateTotalValue recomputes the cached total value from the assets.
func (p *Portfolio) UpdateTotalValue() {
	total := Money{}
	for _, a := range p.assets {
		total = total.Add(a.Value())
	}
	p.totalValue = total
}

// TotalValue returns the cached total market value of all assets.
func (p *Portfolio) TotalValue() Money { return p.totalValue }

// Assets returns an iterator over the assets, in held order.
func (p *Portfolio) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range p.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Classes returns an iterator over the distinct asset classes represented in
// the portfolio, in order of first appearance. Unclassified assets are
// skipped.
func (p *Portfolio) Classes() iter.Seq[AssetClass] {
	return func(yield func(AssetClass) bool) {
		seen := make(map[AssetClass]struct{})
		for _, a := range p.assets {
			class, ok := a.Class()
			if !ok {
				continue
			}
			if _, exists := seen[class]; exists {
				continue
			}
			seen[class] = struct{}{}
			if !yield(class) {
				return
			}
		}
	}
}

// Asset returns the holding for a symbol, or ok=false when the symbol is not
// held. If duplicates exist, the first encountered wins.
func (p *Portfolio) Asset(symbol string) (Asset, bool) {
	if i := p.find(symbol); i >= 0 {
		return p.assets[i], true
	}
	return Asset{}, false
}

func (p *Portfolio) find(symbol string) int {
	for i := range p.assets {
		if p.assets[i].symbol == symbol {
			return i
		}
	}
	return -1
}

// ClassPercent returns the share of the total value held in the given class.
// It fails with ErrZeroTotalValue on an empty or all-zero-value portfolio:
// such a degenerate state must be surfaced, not papered over with a zero.
func (p *Portfolio) ClassPercent(class AssetClass) (Percent, error) {
	if p.totalValue.IsZero() {
		return 0, fmt.Errorf("class %s: %w", class, ErrZeroTotalValue)
	}
	classValue := Money{}
	for _, a := range p.assets {
		if c, ok := a.Class(); ok && c == class {
			classValue = classValue.Add(a.Value())
		}
	}
	return classValue.Div(p.totalValue), nil
}

// Deviation returns the aggregate distance between the current allocation
// and the policy targets, rounded to 3 decimal places for stable comparison.
// Lower is better, zero means every represented class sits exactly on
// target.
//
// The accumulation runs per asset, not per class: a class held through two
// assets contributes its deviation twice. This is the metric the allocator
// ranks candidate states with, so it must not be changed lightly.
// Unclassified assets are excluded from the sum.
func (p *Portfolio) Deviation() (float64, error) {
	var sum float64
	for _, a := range p.assets {
		class, ok := a.Class()
		if !ok {
			continue
		}
		current, err := p.ClassPercent(class)
		if err != nil {
			return 0, err
		}
		target, err := p.policy.Target(class)
		if err != nil {
			return 0, err
		}
		sum += float64(current.Sub(target).Abs())
	}
	return decimal.NewFromFloat(sum).Round(3).InexactFloat64(), nil
}

// Buy adds shares to an already-held position and recomputes the total
// value. It fails with ErrUnknownAsset for symbols not in the portfolio:
// opening new positions is not supported.
func (p *Portfolio) Buy(symbol string, shares int64) error {
	i := p.find(symbol)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, symbol)
	}
	p.assets[i].quantity += shares
	p.UpdateTotalValue()
	return nil
}

// Clone returns a deep copy of the portfolio. Assets are plain values, so a
// structural copy of the slice is a full deep copy. Hypothetical "what if I
// buy one more share" branches operate on clones only, the cloned-from state
// is never touched.
func (p *Portfolio) Clone() *Portfolio {
	return &Portfolio{
		policy:     p.policy,
		assets:     slices.Clone(p.assets),
		totalValue: p.totalValue,
	}
}

// Diff returns a portfolio-shaped view of what was purchased between a
// starting and a final state: the positive quantity deltas per symbol, plus
// any wholly new symbols. Its total value is the total cost of the
// purchases.
func Diff(start, final *Portfolio) *Portfolio {
	var bought []Asset
	for _, a := range final.assets {
		before, ok := start.Asset(a.Symbol())
		if !ok {
			bought = append(bought, a)
			continue
		}
		if delta := a.Quantity() - before.Quantity(); delta > 0 {
			bought = append(bought, a.withQuantity(delta))
		}
	}
	return NewPortfolio(final.policy, bought)
}
