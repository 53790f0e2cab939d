package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/footprint/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion().Complete("eco")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"transport":  {Flags: map[string]complete.Predictor{"mode": nil, "km": nil, "n": nil, "d": nil}},
			"energy":     {Flags: map[string]complete.Predictor{"type": nil, "amount": nil, "unit": nil, "live": nil, "d": nil}},
			"food":       {Flags: map[string]complete.Predictor{"d": nil}},
			"purchase":   {Flags: map[string]complete.Predictor{"product": nil, "item": nil, "price": nil, "eco": nil, "d": nil}},
			"summary":    {Flags: map[string]complete.Predictor{"p": nil, "d": nil}},
			"report":     {Flags: map[string]complete.Predictor{"p": nil, "d": nil}},
			"chart":      {Flags: map[string]complete.Predictor{"p": nil, "d": nil}},
			"activities": {Flags: map[string]complete.Predictor{"p": nil, "s": nil, "d": nil, "category": nil, "head": nil, "tail": nil}},
			"tips":       {Flags: map[string]complete.Predictor{"n": nil, "category": nil}},
			"products":   {Flags: map[string]complete.Predictor{"n": nil}},
			"prefs":      {},
			"topic":      {},
			"assist":     {},
		},
		Flags: map[string]complete.Predictor{
			"data":     nil,
			"user":     nil,
			"factors":  nil,
			"currency": nil,
		},
	}
}
