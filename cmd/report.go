package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minghua/fundtrade"
	"github.com/minghua/fundtrade/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	fund fundFlags
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a point-in-time report of a holding" }
func (*reportCmd) Usage() string {
	return `ft report -code <code> [-d <date>]

  Replays the status file against the fund's history and displays the state
  of the holding on a date: market value, capital invested and returned,
  holding cost, capital at risk and turnover.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.fund.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to yesterday)")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := reportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fund, ledger, err := c.fund.replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := ledger.ReportOn(fund, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(fund.Code(), report))
	return subcommands.ExitSuccess
}

// reportDate parses the -d flag, defaulting to yesterday, the last day with a
// known closing net asset value.
func reportDate(flagValue string) (fundtrade.Date, error) {
	if flagValue == "" {
		return fundtrade.Yesterday(), nil
	}
	return fundtrade.ParseDate(flagValue)
}
