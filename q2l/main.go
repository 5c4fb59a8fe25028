package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/qif2ledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; exits early when invoked by the completion machinery.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"convert": {
				Flags: map[string]complete.Predictor{
					"a": predict.Something,
					"o": predict.Files("*.ledger"),
				},
				Args: predict.Files("*.qif"),
			},
			"check": {Args: predict.Files("*.qif")},
			"topic": {Args: predict.Set{"readme", "qif", "ledger", "*"}},
		},
	}
	completion.Complete("q2l")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
