package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/twr/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and returns immediately when
// none is pending.
func completion() {
	flags := map[string]complete.Predictor{
		"nav-file":       predict.Files("*.json"),
		"flows-file":     predict.Files("*.json"),
		"currency":       predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		"rates":          predict.Something,
		"risk-free-rate": predict.Something,
	}
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	complete.Complete("ptw", &complete.Command{Sub: sub, Flags: flags})
}
