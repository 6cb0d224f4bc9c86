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

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	fund fundFlags
	json bool
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the replayed trade ledger of a holding" }
func (*logCmd) Usage() string {
	return `ft log -code <code> [-json]

  Replays the status file against the fund's history and displays the
  reconstructed trade ledger: one row per trading day, with the cash moved,
  the share delta and the outstanding purchase lots.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	c.fund.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Write the raw ledger in JSONL instead of markdown")
}

func (c *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, ledger, err := c.fund.replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := fundtrade.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	view := renderer.NewLedger(fund.Code(), fund.Name(), ledger)
	printMarkdown(renderer.RenderLedger(view))
	return subcommands.ExitSuccess
}
