package rebalance

import (
	"errors"
	"math"
	"testing"
)

func TestNewAsset(t *testing.T) {
	policy := DefaultPolicy()

	a, err := NewAsset(policy, "voo", M(123.456, "USD"), 10, "Vanguard S&P 500 ETF")
	if err != nil {
		t.Fatalf("NewAsset failed: %v", err)
	}
	if a.Symbol() != "VOO" {
		t.Errorf("Symbol() = %q, want normalized %q", a.Symbol(), "VOO")
	}
	if !a.Price().Equal(USD(123.46)) {
		t.Errorf("Price() = %s, want rounded to cents %s", a.Price(), USD(123.46))
	}
	if class, ok := a.Class(); !ok || class != StocksUSASP500 {
		t.Errorf("Class() = (%q, %v), want (%q, true)", class, ok, StocksUSASP500)
	}
	if !a.Value().Equal(USD(1234.60)) {
		t.Errorf("Value() = %s, want %s", a.Value(), USD(1234.60))
	}

	if _, err := NewAsset(policy, "VOO", USD(100), -1, ""); err == nil {
		t.Error("NewAsset accepted a negative quantity")
	}
	if _, err := NewAsset(policy, "VOO", USD(-100), 1, ""); err == nil {
		t.Error("NewAsset accepted a negative price")
	}

	// unknown symbols build fine but stay unclassified.
	unknown, err := NewAsset(policy, "AAPL", USD(100), 1, "")
	if err != nil {
		t.Fatalf("NewAsset(AAPL) failed: %v", err)
	}
	if _, ok := unknown.Class(); ok {
		t.Error("Class() of an unknown symbol reported ok=true")
	}
}

func TestPortfolio_ClassPercentSumsToOne(t *testing.T) {
	p := NewPortfolio(DefaultPolicy(), []Asset{
		asset(t, "VOO", 100, 10),
		asset(t, "VCIT", 50, 10),
		asset(t, "VNQ", 80, 5),
		asset(t, "VXUS", 60, 20),
	})

	var sum Percent
	for class := range p.Classes() {
		pct, err := p.ClassPercent(class)
		if err != nil {
			t.Fatalf("ClassPercent(%s) failed: %v", class, err)
		}
		if pct < 0 {
			t.Errorf("ClassPercent(%s) = %v, want non-negative", class, pct)
		}
		sum += pct
	}
	if !sum.Equal(1) {
		t.Errorf("sum of represented class percentages = %v, want 1", float64(sum))
	}
}

func TestPortfolio_ClassPercentZeroTotal(t *testing.T) {
	p := NewPortfolio(DefaultPolicy(), []Asset{asset(t, "VOO", 100, 0)})
	if _, err := p.ClassPercent(StocksUSASP500); !errors.Is(err, ErrZeroTotalValue) {
		t.Errorf("ClassPercent on zero-value portfolio = %v, want ErrZeroTotalValue", err)
	}
	if _, err := p.Deviation(); !errors.Is(err, ErrZeroTotalValue) {
		t.Errorf("Deviation on zero-value portfolio = %v, want ErrZeroTotalValue", err)
	}
}

func TestPortfolio_Deviation(t *testing.T) {
	// VOO 1000 is 66.7% of 1500 against a 40% target, VCIT 500 is 33.3%
	// against 10%: deviation 0.267 + 0.233 rounds to 0.500.
	p := twoClassPortfolio(t, 10, 10)
	got, err := p.Deviation()
	if err != nil {
		t.Fatalf("Deviation() failed: %v", err)
	}
	if got != 0.5 {
		t.Errorf("Deviation() = %v, want 0.5", got)
	}
	if got < 0 {
		t.Errorf("Deviation() = %v, want non-negative", got)
	}
}

func TestPortfolio_DeviationZeroOnTarget(t *testing.T) {
	policy, err := NewPolicy(
		map[string]AssetClass{"AAA": "GROWTH", "BBB": "INCOME"},
		map[AssetClass]Percent{"GROWTH": 0.80, "INCOME": 0.20},
	)
	if err != nil {
		t.Fatalf("NewPolicy failed: %v", err)
	}
	aaa, _ := NewAsset(policy, "AAA", USD(100), 8, "")
	bbb, _ := NewAsset(policy, "BBB", USD(100), 2, "")
	p := NewPortfolio(policy, []Asset{aaa, bbb})

	got, err := p.Deviation()
	if err != nil {
		t.Fatalf("Deviation() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("Deviation() = %v, want 0 for an exactly on-target portfolio", got)
	}
}

func TestPortfolio_DeviationCountsPerAsset(t *testing.T) {
	// The metric accumulates per asset: GROWTH is held through two assets,
	// so its 0.10 drift counts twice. 0.10 + 0.10 + 0.10 = 0.30, where a
	// per-class metric would report 0.20.
	policy, err := NewPolicy(
		map[string]AssetClass{"AAA": "GROWTH", "AAB": "GROWTH", "BBB": "INCOME"},
		map[AssetClass]Percent{"GROWTH": 0.50, "INCOME": 0.50},
	)
	if err != nil {
		t.Fatalf("NewPolicy failed: %v", err)
	}
	aaa, _ := NewAsset(policy, "AAA", USD(100), 3, "")
	aab, _ := NewAsset(policy, "AAB", USD(100), 3, "")
	bbb, _ := NewAsset(policy, "BBB", USD(100), 4, "")
	p := NewPortfolio(policy, []Asset{aaa, aab, bbb})

	got, err := p.Deviation()
	if err != nil {
		t.Fatalf("Deviation() failed: %v", err)
	}
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Deviation() = %v, want 0.3 (per-asset accumulation)", got)
	}
}

func TestPortfolio_Buy(t *testing.T) {
	p := twoClassPortfolio(t, 10, 10)
	before := p.TotalValue()
	vcitBefore, _ := p.Asset("VCIT")

	if err := p.Buy("VOO", 3); err != nil {
		t.Fatalf("Buy(VOO, 3) failed: %v", err)
	}

	voo, ok := p.Asset("VOO")
	if !ok || voo.Quantity() != 13 {
		t.Errorf("after Buy, VOO quantity = %d, want 13", voo.Quantity())
	}
	wantTotal := before.Add(USD(300))
	if !p.TotalValue().Equal(wantTotal) {
		t.Errorf("after Buy, TotalValue() = %s, want %s", p.TotalValue(), wantTotal)
	}
	vcit, _ := p.Asset("VCIT")
	if !vcit.Value().Equal(vcitBefore.Value()) {
		t.Errorf("Buy(VOO) changed VCIT value from %s to %s", vcitBefore.Value(), vcit.Value())
	}

	if err := p.Buy("AAPL", 1); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Buy(AAPL) error = %v, want ErrUnknownAsset", err)
	}
}

func TestPortfolio_AssetFirstMatchWins(t *testing.T) {
	// duplicate symbols are a caller error, the lookup just resolves to the
	// first encountered.
	p := NewPortfolio(DefaultPolicy(), []Asset{
		asset(t, "VOO", 100, 1),
		asset(t, "VOO", 200, 2),
	})
	a, ok := p.Asset("VOO")
	if !ok || a.Quantity() != 1 {
		t.Errorf("Asset(VOO) quantity = %d, want first match with 1", a.Quantity())
	}
}

func TestPortfolio_CloneIsolation(t *testing.T) {
	p := twoClassPortfolio(t, 10, 10)
	clone := p.Clone()

	if err := clone.Buy("VOO", 5); err != nil {
		t.Fatalf("Buy on clone failed: %v", err)
	}

	original, _ := p.Asset("VOO")
	if original.Quantity() != 10 {
		t.Errorf("buy on a clone mutated the original: quantity = %d, want 10", original.Quantity())
	}
	if !p.TotalValue().Equal(USD(1500)) {
		t.Errorf("buy on a clone mutated the original total: %s, want %s", p.TotalValue(), USD(1500))
	}
}

func TestDiff(t *testing.T) {
	start := twoClassPortfolio(t, 10, 10)
	final := twoClassPortfolio(t, 13, 10)

	diff := Diff(start, final)
	voo, ok := diff.Asset("VOO")
	if !ok || voo.Quantity() != 3 {
		t.Errorf("Diff VOO quantity = %d, want 3", voo.Quantity())
	}
	if _, ok := diff.Asset("VCIT"); ok {
		t.Error("Diff contains VCIT, whose quantity did not change")
	}
	if !diff.TotalValue().Equal(USD(300)) {
		t.Errorf("Diff total = %s, want %s", diff.TotalValue(), USD(300))
	}
}

func TestDiff_NewSymbol(t *testing.T) {
	start := NewPortfolio(DefaultPolicy(), []Asset{asset(t, "VOO", 100, 10)})
	final := NewPortfolio(DefaultPolicy(), []Asset{
		asset(t, "VOO", 100, 10),
		asset(t, "VNQ", 80, 2),
	})

	diff := Diff(start, final)
	vnq, ok := diff.Asset("VNQ")
	if !ok || vnq.Quantity() != 2 {
		t.Errorf("Diff VNQ quantity = %d, want the wholly new position with 2", vnq.Quantity())
	}
}
