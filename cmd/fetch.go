package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minghua/fundtrade"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	code string
	name string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch a fund's history and print a short summary" }
func (*fetchCmd) Usage() string {
	return `ft fetch -code <code> [-name <name>]

  Downloads the net asset value history, dividends and share conversions of a
  fund, and prints a short summary. Responses are cached for a day, so it is
  cheap to run before any report.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Fund code to fetch")
	f.StringVar(&c.name, "name", "", "Fund display name")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: missing required -code flag")
		return subcommands.ExitUsageError
	}
	fund, err := fundtrade.FetchFund(c.code, c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	on, nav, ok := fund.LatestNAV()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: fund %s has no published net asset value\n", c.code)
		return subcommands.ExitFailure
	}
	fmt.Printf("fund %s %s: %d days of history, %d corporate actions, latest value %s on %s\n",
		fund.Code(), fund.Name(), fund.Days(), fund.Actions(), nav, on)
	return subcommands.ExitSuccess
}
