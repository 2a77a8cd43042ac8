package renderer

import (
	"github.com/etnz/rebalance"
)

// Holding is a struct to represent the current state of a portfolio.
// Numbers are handled using the exact value types (Money, Percent) so that
// they already carry their own renderers (String, SignedString).
type Holding struct {
	// TotalValue is the market value of the whole portfolio.
	TotalValue rebalance.Money `json:"totalValue"`
	// Deviation is the aggregate distance from the policy targets.
	Deviation float64 `json:"deviation"`
	// Assets lists every holding.
	Assets []AssetRow `json:"assets"`
	// Classes lists the represented asset classes against their targets.
	Classes []ClassRow `json:"classes"`
}

// AssetRow represents a single holding.
type AssetRow struct {
	Symbol      string          `json:"symbol"`
	Description string          `json:"description,omitempty"`
	Class       string          `json:"class,omitempty"`
	Quantity    int64           `json:"quantity"`
	Price       rebalance.Money `json:"price"`
	Value       rebalance.Money `json:"value"`
}

// ClassRow represents one asset class allocation against its target.
type ClassRow struct {
	Class   string            `json:"class"`
	Value   rebalance.Money   `json:"value"`
	Current rebalance.Percent `json:"current"`
	Target  rebalance.Percent `json:"target"`
	Drift   rebalance.Percent `json:"drift"`
}

// NewHolding builds the holding view of a portfolio.
func NewHolding(p *rebalance.Portfolio) (*Holding, error) {
	deviation, err := p.Deviation()
	if err != nil {
		return nil, err
	}
	h := &Holding{
		TotalValue: p.TotalValue(),
		Deviation:  deviation,
	}
	for a := range p.Assets() {
		class, _ := a.Class()
		h.Assets = append(h.Assets, AssetRow{
			Symbol:      a.Symbol(),
			Description: a.Description(),
			Class:       string(class),
			Quantity:    a.Quantity(),
			Price:       a.Price(),
			Value:       a.Value(),
		})
	}
	rows, err := classRows(p)
	if err != nil {
		return nil, err
	}
	h.Classes = rows
	return h, nil
}

// classRows builds the per-class allocation table of a portfolio.
func classRows(p *rebalance.Portfolio) ([]ClassRow, error) {
	var rows []ClassRow
	for class := range p.Classes() {
		current, err := p.ClassPercent(class)
		if err != nil {
			return nil, err
		}
		target, err := p.Policy().Target(class)
		if err != nil {
			return nil, err
		}
		classValue := rebalance.Money{}
		for a := range p.Assets() {
			if c, ok := a.Class(); ok && c == class {
				classValue = classValue.Add(a.Value())
			}
		}
		rows = append(rows, ClassRow{
			Class:   string(class),
			Value:   classValue,
			Current: current,
			Target:  target,
			Drift:   current.Sub(target),
		})
	}
	return rows, nil
}
