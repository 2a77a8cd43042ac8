package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion handles the invocation itself when COMP_LINE is set.
	completion().Complete("rbl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	positionFlags := map[string]complete.Predictor{
		"f":      predict.Files("*"),
		"sheet":  predict.Nothing,
		"prefix": predict.Nothing,
		"c":      predict.Set{"USD", "EUR"},
		"format": predict.Set{"markdown", "json"},
	}
	rebalanceFlags := map[string]complete.Predictor{"b": predict.Nothing}
	for name, p := range positionFlags {
		rebalanceFlags[name] = p
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"policy-file": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"rebalance": {Flags: rebalanceFlags},
			"holding":   {Flags: positionFlags},
			"classes":   {},
		},
	}
}
