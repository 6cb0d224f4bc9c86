package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the status file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ft fmt

  Validates and formats the status file. This command reads all instructions,
  sorts them by date, and writes them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := DecodeStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load status: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(status) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no instructions found to format.")
		return subcommands.ExitSuccess
	}
	if err := EncodeStatus(status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save status: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d instructions in %s.\n", len(status), *statusFile)
	return subcommands.ExitSuccess
}
