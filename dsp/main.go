package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dumpsplit/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op outside of completion mode.
	completion().Complete("dsp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"split": {
				Flags: map[string]complete.Predictor{"o": predict.Dirs("*")},
				Args:  predict.Files("*"),
			},
			"gains": {
				Flags: map[string]complete.Predictor{
					"i": predict.Files("*.csv"),
					"o": predict.Dirs("*"),
				},
			},
			"kinds": {},
			"topic": {},
		},
	}
}
