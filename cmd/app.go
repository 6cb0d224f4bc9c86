// Package cmd implements the CLI application to track fund holdings.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/minghua/fundtrade"
)

// Commands is the list of all subcommands, in display order.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&importCmd{},
	&fmtCmd{},
	&logCmd{},
	&reportCmd{},
	&xirrCmd{},
	&volumeCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statusFile = flag.String("status-file", "status.jsonl", "Path to the status file containing trade instructions (JSONL format)")

// DecodeStatus reads the instructions from the app status file.
func DecodeStatus() (status []fundtrade.Instruction, err error) {
	f, err := os.Open(*statusFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, status file does not exist, starting from an empty one instead")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fundtrade.DecodeStatus(f)
}

// EncodeStatus writes the instructions back to the app status file.
func EncodeStatus(status []fundtrade.Instruction) error {
	f, err := os.Create(*statusFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return fundtrade.EncodeStatus(f, status)
}

// fundFlags holds the flags shared by every subcommand that prices a holding.
type fundFlags struct {
	code        string
	name        string
	purchaseFee float64
	redeemFees  feeSchedule
}

func (c *fundFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Fund code to fetch quotes for")
	f.StringVar(&c.name, "name", "", "Fund display name")
	f.Float64Var(&c.purchaseFee, "fee", 0.015, "Front-load rate deducted from every purchase")
	f.Var(&c.redeemFees, "redeem-fee", "Redemption fee tier as days:rate, repeatable, in ascending days order")
}

// load fetches the fund data and applies the fee schedule from the flags.
func (c *fundFlags) load() (*fundtrade.Fund, error) {
	if c.code == "" {
		return nil, fmt.Errorf("missing required -code flag")
	}
	fund, err := fundtrade.FetchFund(c.code, c.name)
	if err != nil {
		return nil, err
	}
	fund.SetPurchaseFee(c.purchaseFee)
	for _, tier := range c.redeemFees {
		fund.AddRedemptionFee(tier.days, tier.rate)
	}
	return fund, nil
}

// replay loads the status file and replays it against the fund.
func (c *fundFlags) replay() (*fundtrade.Fund, *fundtrade.TradeLedger, error) {
	fund, err := c.load()
	if err != nil {
		return nil, nil, err
	}
	status, err := DecodeStatus()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := fundtrade.Replay(fund, status)
	if err != nil {
		return nil, nil, err
	}
	return fund, ledger, nil
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// Fall back to the raw document.
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
