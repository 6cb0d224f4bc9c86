package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minghua/fundtrade"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	csvFile string
	code    string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a hand-kept CSV status table" }
func (*importCmd) Usage() string {
	return `ft import -csv <file> -code <code>

  Reads a hand-kept status table in CSV form (a "date" column plus one column
  per fund code) and writes the instructions of the given code to the status
  file in canonical JSONL form.

Usage Examples:
# Imports the 000001 column of trades.csv into status.jsonl.
$ ft import -csv trades.csv -code 000001
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "CSV status table to import")
	f.StringVar(&c.code, "code", "", "Fund code column to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" || c.code == "" {
		fmt.Fprintln(os.Stderr, "Error: both -csv and -code flags are required")
		return subcommands.ExitUsageError
	}

	r, err := os.Open(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.csvFile, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	status, err := fundtrade.ImportStatus(r, c.code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot import %q: %v\n", c.csvFile, err)
		return subcommands.ExitFailure
	}
	if err := EncodeStatus(status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write status file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d instructions to %s\n", len(status), *statusFile)
	return subcommands.ExitSuccess
}
