package rebalance

import (
	"fmt"
	"slices"
	"strings"
)

// AssetClass is a category of investment used to group holdings for
// target-based allocation.
type AssetClass string

const (
	StocksUSASmallCap   AssetClass = "STOCKS_USA_SMALL_CAP"
	StocksUSASP500      AssetClass = "STOCKS_USA_SP500"
	StocksEmergingMkt   AssetClass = "STOCKS_EMERGING_MARKET"
	StocksInternational AssetClass = "STOCKS_INTERNATIONAL"
	BondsCorp           AssetClass = "BONDS_CORP"
	BondsEmergingMkt    AssetClass = "BONDS_EMERGING_MARKET"
	RealEstate          AssetClass = "REAL_ESTATE"
)

// Policy maps ticker symbols to asset classes and asset classes to their
// target percentage of the total portfolio value. It is plain read-only
// configuration, injected wherever classification or targets are needed.
type Policy struct {
	classes map[string]AssetClass
	targets map[AssetClass]Percent
}

// NewPolicy creates a policy from explicit symbol and target maps.
// Symbols are normalized to upper case. It returns an error when a mapped
// symbol points to a class that has no target: such a policy would make
// every deviation computation fail later, far from the actual mistake.
func NewPolicy(classes map[string]AssetClass, targets map[AssetClass]Percent) (Policy, error) {
	p := Policy{
		classes: make(map[string]AssetClass, len(classes)),
		targets: make(map[AssetClass]Percent, len(targets)),
	}
	for class, target := range targets {
		if target < 0 || target > 1 {
			return Policy{}, fmt.Errorf("class %s: target %v is not a fraction of one", class, float64(target))
		}
		p.targets[class] = target
	}
	for symbol, class := range classes {
		if _, ok := p.targets[class]; !ok {
			return Policy{}, fmt.Errorf("symbol %s: %w (%s)", symbol, ErrNoTarget, class)
		}
		p.classes[strings.ToUpper(symbol)] = class
	}
	return p, nil
}

// Classify returns the asset class for a symbol. Symbols outside the policy
// universe return ok=false; callers must tolerate unclassified assets.
func (p Policy) Classify(symbol string) (AssetClass, bool) {
	class, ok := p.classes[strings.ToUpper(symbol)]
	return class, ok
}

// Target returns the configured target percentage for an asset class.
func (p Policy) Target(class AssetClass) (Percent, error) {
	target, ok := p.targets[class]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoTarget, class)
	}
	return target, nil
}

// Classes returns all classes with a configured target, sorted for stable
// display.
func (p Policy) Classes() []AssetClass {
	classes := make([]AssetClass, 0, len(p.targets))
	for class := range p.targets {
		classes = append(classes, class)
	}
	slices.Sort(classes)
	return classes
}

// Symbols returns all symbols in the policy universe, sorted.
func (p Policy) Symbols() []string {
	symbols := make([]string, 0, len(p.classes))
	for symbol := range p.classes {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// DefaultPolicy returns the built-in seven-class Vanguard ETF policy.
// Targets are roughly from "A Random Walk Down Wall Street"; they are meant
// to sum to one but that is a design assumption, not a checked invariant.
func DefaultPolicy() Policy {
	p, err := NewPolicy(
		map[string]AssetClass{
			"VTWO": StocksUSASmallCap,
			"VOO":  StocksUSASP500,
			"VWO":  StocksEmergingMkt,
			"VXUS": StocksInternational,
			"VCIT": BondsCorp,
			"VWOB": BondsEmergingMkt,
			"VNQ":  RealEstate,
		},
		map[AssetClass]Percent{
			StocksUSASmallCap:   0.10,
			StocksUSASP500:      0.40,
			StocksEmergingMkt:   0.05,
			StocksInternational: 0.25,
			BondsCorp:           0.10,
			BondsEmergingMkt:    0.05,
			RealEstate:          0.05,
		},
	)
	if err != nil {
		// the built-in maps are complete, this cannot happen
		panic(err)
	}
	return p
}
