package renderer

import (
	"github.com/etnz/rebalance"
)

// Rebalance is a struct to represent the outcome of a rebalancing run: the
// purchases to make and the resulting allocation.
type Rebalance struct {
	// Budget is the cash amount that was available to invest.
	Budget rebalance.Money `json:"budget"`
	// TotalCost is the cost of all recommended purchases.
	TotalCost rebalance.Money `json:"totalCost"`
	// Remaining is the budget left unspent.
	Remaining rebalance.Money `json:"remaining"`
	// StartDeviation is the deviation score before rebalancing.
	StartDeviation float64 `json:"startDeviation"`
	// FinalDeviation is the deviation score after rebalancing.
	FinalDeviation float64 `json:"finalDeviation"`
	// Purchases lists the recommended buys.
	Purchases []Purchase `json:"purchases"`
	// Final is the holding view of the rebalanced portfolio.
	Final *Holding `json:"final"`
}

// Purchase represents the recommended buy of a single symbol.
type Purchase struct {
	Symbol   string          `json:"symbol"`
	Quantity int64           `json:"quantity"`
	Price    rebalance.Money `json:"price"`
	Cost     rebalance.Money `json:"cost"`
}

// NewRebalance builds the report for a rebalancing run from its starting and
// final portfolios.
func NewRebalance(start, final *rebalance.Portfolio, budget rebalance.Money) (*Rebalance, error) {
	startDeviation, err := start.Deviation()
	if err != nil {
		return nil, err
	}
	holding, err := NewHolding(final)
	if err != nil {
		return nil, err
	}

	diff := rebalance.Diff(start, final)
	r := &Rebalance{
		Budget:         budget,
		TotalCost:      diff.TotalValue(),
		Remaining:      budget.Sub(diff.TotalValue()),
		StartDeviation: startDeviation,
		FinalDeviation: holding.Deviation,
		Final:          holding,
	}
	for a := range diff.Assets() {
		r.Purchases = append(r.Purchases, Purchase{
			Symbol:   a.Symbol(),
			Quantity: a.Quantity(),
			Price:    a.Price(),
			Cost:     a.Value(),
		})
	}
	return r, nil
}
