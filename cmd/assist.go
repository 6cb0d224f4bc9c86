package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/minghua/fundtrade/renderer"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	fund  fundFlags
	date  string
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant to comment on a holding" }
func (*assistCmd) Usage() string {
	return `ft assist -code <code> [-d <date>] [question...]

  Replays the status file, builds the holding report and sends it to Gemini
  together with an optional question. Requires the GEMINI_API_KEY environment
  variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.fund.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to yesterday)")
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to query")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Summarize the state of this holding in a few sentences."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf("You are a careful fund accounting assistant.\n\n%s\n\n%s",
		renderer.ReportMarkdown(fund.Code(), report), question)
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error querying Gemini:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
