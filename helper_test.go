package rebalance

import "testing"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// asset is a helper for tests to create a classified asset under the default
// policy, failing the test on constructor errors.
func asset(t *testing.T, symbol string, price float64, quantity int64) Asset {
	t.Helper()
	a, err := NewAsset(DefaultPolicy(), symbol, USD(price), quantity, "")
	if err != nil {
		t.Fatalf("NewAsset(%s) failed: %v", symbol, err)
	}
	return a
}

// twoClassPortfolio builds the canonical two-asset fixture: VOO (S&P 500,
// target 40%) and VCIT (corporate bonds, target 10%).
func twoClassPortfolio(t *testing.T, vooQty, vcitQty int64) *Portfolio {
	t.Helper()
	return NewPortfolio(DefaultPolicy(), []Asset{
		asset(t, "VOO", 100, vooQty),
		asset(t, "VCIT", 50, vcitQty),
	})
}
