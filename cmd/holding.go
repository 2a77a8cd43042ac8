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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	file     string
	sheet    string
	prefix   string
	currency string
	format   string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current holdings and their class allocation" }
func (*holdingCmd) Usage() string {
	return `rbl holding -f <positions-file> [-sheet <name>] [-prefix <p>] [-c <currency>] [-format markdown|json]

  Displays the portfolio holdings, the allocation by asset class, and how
  far each class sits from its policy target.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "InvestmentSummary.xlsx", "Positions file (.xlsx, .csv or .json)")
	f.StringVar(&c.sheet, "sheet", "Positions", "Sheet name for .xlsx positions files")
	f.StringVar(&c.prefix, "prefix", "", "Keep only symbols starting with this prefix")
	f.StringVar(&c.currency, "c", "USD", "Currency of the prices in the positions file")
	f.StringVar(&c.format, "format", "markdown", "Output format: markdown or json")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p, err := rebalance.NewPortfolioFromPositions(policy, positions, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := renderer.NewHolding(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating holding report: %v\n", err)
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
		printMarkdown(renderer.RenderHolding(report))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
