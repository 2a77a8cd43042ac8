package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// classesCmd implements the 'classes' subcommand.
type classesCmd struct{}

func (*classesCmd) Name() string     { return "classes" }
func (*classesCmd) Synopsis() string { return "display the classification policy in use" }
func (*classesCmd) Usage() string {
	return `rbl classes [-policy-file <path>]

  Displays the symbol universe, the asset class of each symbol, and the
  target percentage of each class.
`
}

func (*classesCmd) SetFlags(f *flag.FlagSet) {}

func (c *classesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	policy, err := LoadPolicy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policy: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PolicyMarkdown(policy))
	return subcommands.ExitSuccess
}
