package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/minghua/fundtrade/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. It exits the process when invoked by
// the shell completion machinery, and is a no-op otherwise.
func completion() {
	fund := map[string]complete.Predictor{
		"code":       predict.Something,
		"name":       predict.Something,
		"fee":        predict.Something,
		"redeem-fee": predict.Something,
	}
	withDate := func() map[string]complete.Predictor {
		flags := map[string]complete.Predictor{"d": predict.Something}
		for k, v := range fund {
			flags[k] = v
		}
		return flags
	}

	xirrFlags := withDate()
	xirrFlags["guess"] = predict.Something
	assistFlags := withDate()
	assistFlags["model"] = predict.Something
	logFlags := map[string]complete.Predictor{"json": predict.Nothing}
	for k, v := range fund {
		logFlags[k] = v
	}
	volumeFlags := map[string]complete.Predictor{"freq": predict.Set{"daily", "weekly", "monthly"}}
	for k, v := range fund {
		volumeFlags[k] = v
	}

	ft := &complete.Command{
		Flags: map[string]complete.Predictor{
			"status-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"fetch":  {Flags: map[string]complete.Predictor{"code": predict.Something, "name": predict.Something}},
			"import": {Flags: map[string]complete.Predictor{"csv": predict.Files("*.csv"), "code": predict.Something}},
			"fmt":    {},
			"log":    {Flags: logFlags},
			"report": {Flags: withDate()},
			"xirr":   {Flags: xirrFlags},
			"volume": {Flags: volumeFlags},
			"assist": {Flags: assistFlags},
		},
	}
	ft.Complete("ft")
}
