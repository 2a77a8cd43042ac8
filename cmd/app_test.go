package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPositions_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.csv")
	csv := "Equity Symbol,Equity Description,Quantity,Market Price\n" +
		"VOO,Vanguard S&P 500 ETF,10,100.00\n" +
		"AAPL,Apple Inc,5,170.25\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	positions, err := loadPositions(path, "", "V")
	if err != nil {
		t.Fatalf("loadPositions failed: %v", err)
	}
	if len(positions) != 1 || positions[0].Symbol != "VOO" {
		t.Errorf("loadPositions = %+v, want the single VOO position", positions)
	}
}

func TestLoadPositions_UnsupportedExtension(t *testing.T) {
	if _, err := loadPositions("positions.pdf", "", ""); err == nil {
		t.Error("loadPositions accepted a .pdf file")
	}
}

func TestLoadPolicy_Default(t *testing.T) {
	policy, err := LoadPolicy()
	if err != nil {
		t.Fatalf("LoadPolicy failed: %v", err)
	}
	if _, ok := policy.Classify("VOO"); !ok {
		t.Error("default policy does not classify VOO")
	}
}
