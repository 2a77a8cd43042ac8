package rebalance

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := USD(100.10)
	b := USD(49.90)

	if got := a.Add(b); !got.Equal(USD(150)) {
		t.Errorf("Add = %s, want %s", got, USD(150))
	}
	if got := a.Sub(b); !got.Equal(USD(50.20)) {
		t.Errorf("Sub = %s, want %s", got, USD(50.20))
	}
	if got := a.Mul(3); !got.Equal(USD(300.30)) {
		t.Errorf("Mul = %s, want %s", got, USD(300.30))
	}
	if got := USD(500).Div(USD(1500)); !got.Equal(Percent(1.0 / 3.0)) {
		t.Errorf("Div = %v, want one third", float64(got))
	}
}

func TestMoney_Round(t *testing.T) {
	if got := USD(123.456).Round(); !got.Equal(USD(123.46)) {
		t.Errorf("Round = %s, want %s", got, USD(123.46))
	}
	if got := USD(123.454).Round(); !got.Equal(USD(123.45)) {
		t.Errorf("Round = %s, want %s", got, USD(123.45))
	}
}

func TestMoney_String(t *testing.T) {
	if got := USD(1234.5).String(); got != "$1,234.50" {
		t.Errorf("String() = %q, want %q", got, "$1,234.50")
	}
	if got := USD(42).SignedString(); got != "+$42.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$42.00")
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// the "" currency is weak: it adopts the other operand's currency.
	if got := (Money{}).Add(USD(10)); got.Currency() != "USD" {
		t.Errorf("zero-value money Add(USD) currency = %q, want USD", got.Currency())
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(USD(123.456))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"currency":"USD","amount":"123.46"}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}

func TestPercent_String(t *testing.T) {
	testCases := []struct {
		p    Percent
		want string
	}{
		{0.4, "40.00%"},
		{0.0533, "5.33%"},
		{1, "100.00%"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.want)
		}
	}
	if got := Percent(-0.012).SignedString(); got != "-1.20%" {
		t.Errorf("SignedString() = %q, want %q", got, "-1.20%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
}
