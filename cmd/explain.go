package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim"
	"github.com/nroux/stocksim/renderer"
	"google.golang.org/genai"
)

// explainModel is the Gemini model used to narrate simulation reports.
const explainModel = "gemini-2.5-flash"

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	simulate simulateCmd
}

func (*explainCmd) Name() string { return "explain" }
func (*explainCmd) Synopsis() string {
	return "simulate an investment and explain the outcome in plain language"
}
func (*explainCmd) Usage() string {
	return `ssim explain -d <buy-date> [-a <amount>] [-s <sell-date>] <ticker>

  Runs the same simulation as 'simulate', then asks Gemini to explain the
  report for someone new to investing. Requires a GEMINI_API_KEY in the
  environment.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.simulate.buyDate, "d", "", "Buy date (YYYY-MM-DD)")
	f.StringVar(&c.simulate.sellDate, "s", "", "Sell date (defaults to today)")
	f.Float64Var(&c.simulate.amount, "a", 1000, "Amount to invest")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: want exactly one ticker, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	req, err := c.simulate.request(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	lookupCtx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := newSimulator().Simulate(lookupCtx, req)
	if err != nil {
		return fail(err)
	}
	md := renderer.ResultMarkdown(res)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, explainModel, genai.Text(prompt(res, md)), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking Gemini:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}

// prompt frames the report for a beginner-friendly explanation.
func prompt(r *stocksim.Result, md string) string {
	var b strings.Builder
	b.WriteString("You are a patient financial educator. Explain the following ")
	b.WriteString("investment simulation report to someone new to investing: what ")
	b.WriteString("happened to the position, what the annualized return means, and ")
	b.WriteString("what this result does and does not say about ")
	b.WriteString(r.Ticker)
	b.WriteString(". Keep it short, in markdown, and do not give financial advice.\n\n")
	b.WriteString(md)
	return b.String()
}
