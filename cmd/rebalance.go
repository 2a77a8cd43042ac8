package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	budget   float64
	file     string
	sheet    string
	prefix   string
	currency string
	format   string
}

func (*rebalanceCmd) Name() string { return "rebalance" }
func (*rebalanceCmd) Synopsis() string {
	return "allocate a cash budget across the positions of a portfolio"
}
func (*rebalanceCmd) Usage() string {
	return `rbl rebalance -b <amount> -f <positions-file> [-sheet <name>] [-prefix <p>] [-c <currency>] [-format markdown|json]

  Reads the current positions from a broker export (.xlsx, .csv or .json),
  then buys one share at a time, always the share that brings the class
  allocation closest to the policy targets, until the budget is spent.
  The printed plan never overspends the budget.

Usage Examples:
# Invest $17000 according to the positions of an Excel export.
$ rbl rebalance -b 17000 -f InvestmentSummary.xlsx

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.budget, "b", 0, "Cash budget to invest")
	f.StringVar(&c.file, "f", "InvestmentSummary.xlsx", "Positions file (.xlsx, .csv or .json)")
	f.StringVar(&c.sheet, "sheet", "Positions", "Sheet name for .xlsx positions files")
	f.StringVar(&c.prefix, "prefix", "", "Keep only symbols starting with this prefix")
	f.StringVar(&c.currency, "c", "USD", "Currency of the prices in the positions file")
	f.StringVar(&c.format, "format", "markdown", "Output format: markdown or json")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.budget <= 0 {
		fmt.Fprintf(os.Stderr, "Error: budget must be positive, got %v\n", c.budget)
		return subcommands.ExitUsageError
	}

	policy, err := LoadPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policy: %v\n", err)
		return subcommands.ExitFailure
	}

	positions, err := loadPositions(c.file, c.sheet, c.prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
		return subcommands.ExitFailure
	}

	start, err := rebalance.NewPortfolioFromPositions(policy, positions, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	final, err := rebalance.Rebalance(start, rebalance.M(c.budget, c.currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebalancing: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := renderer.NewRebalance(start, final, rebalance.M(c.budget, c.currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rebalance report: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
	case "markdown":
		printMarkdown(renderer.RenderRebalance(report))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
