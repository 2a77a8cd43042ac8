// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rebalanceCmd{}, "allocation")
	c.Register(&holdingCmd{}, "allocation")
	c.Register(&classesCmd{}, "policy")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var policyFile = flag.String("policy-file", "", "Path to a YAML classification policy. Uses the built-in policy when empty.")

// LoadPolicy returns the policy selected on the command line, or the
// built-in default.
func LoadPolicy() (rebalance.Policy, error) {
	if *policyFile == "" {
		return rebalance.DefaultPolicy(), nil
	}
	return rebalance.LoadPolicy(*policyFile)
}

// loadPositions reads position records from a broker export, dispatching on
// the file extension, and narrows them to the symbols matching prefix.
func loadPositions(path, sheet, prefix string) ([]rebalance.Position, error) {
	var positions []rebalance.Position
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		var err error
		positions, err = rebalance.ReadPositionsXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
	case ".csv", ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open positions file %q: %w", path, err)
		}
		defer f.Close()
		if ext == ".csv" {
			positions, err = rebalance.ReadPositionsCSV(f)
		} else {
			positions, err = rebalance.ReadPositionsJSON(f)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported positions file %q: want .xlsx, .csv or .json", path)
	}
	return rebalance.FilterPositions(positions, prefix), nil
}
