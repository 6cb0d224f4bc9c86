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

// volumeCmd holds the flags for the 'volume' subcommand.
type volumeCmd struct {
	fund fundFlags
	freq string
}

func (*volumeCmd) Name() string     { return "volume" }
func (*volumeCmd) Synopsis() string { return "display the bucketed trade volumes of a holding" }
func (*volumeCmd) Usage() string {
	return `ft volume -code <code> [-freq <daily|weekly|monthly>]

  Replays the status file against the fund's history and displays the traded
  cash aggregated per period, split between purchases and redemptions.
`
}

func (c *volumeCmd) SetFlags(f *flag.FlagSet) {
	c.fund.SetFlags(f)
	f.StringVar(&c.freq, "freq", "weekly", "Aggregation period: daily, weekly or monthly")
}

func (c *volumeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := fundtrade.ParsePeriod(c.freq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fund, ledger, err := c.fund.replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	buckets, err := ledger.Volume(period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.VolumeMarkdown(fund.Code(), period, buckets))
	return subcommands.ExitSuccess
}
