package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	fund  fundFlags
	date  string
	guess float64
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "compute the annualized rate of return of a holding" }
func (*xirrCmd) Usage() string {
	return `ft xirr -code <code> [-d <date>] [-guess <rate>]

  Computes the annualized internal rate of return of the holding's cashflow
  series, as if the whole position were sold on the given date at that day's
  price, redemption fees included.
`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	c.fund.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date to liquidate on (defaults to yesterday)")
	f.Float64Var(&c.guess, "guess", 0.1, "Starting guess for the rate solver")
}

func (c *xirrCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	rate, err := ledger.InternalRateOfReturn(fund, on, c.guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s annualized return on %s: %.2f%%\n", fund.Code(), on, rate*100)
	return subcommands.ExitSuccess
}
