package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	buyDate  string
	sellDate string
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare two investment scenarios over the same period"
}
func (*compareCmd) Usage() string {
	return `ssim compare -d <buy-date> [-s <sell-date>] <scenario-a> <scenario-b>

  Runs both scenarios over the same period and declares a winner by total
  return. A scenario is a comma-separated basket of TICKER:AMOUNT holdings.
  A scenario that cannot be priced does not hide the other one's result.

Usage Examples:
# All-in Apple versus a two-way split, since 2020.
$ ssim compare -d 2020-01-02 AAPL:1000 MSFT:500,GOOGL:500
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyDate, "d", "", "Buy date (YYYY-MM-DD)")
	f.StringVar(&c.sellDate, "s", "", "Sell date (defaults to today)")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: want exactly two scenarios, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	scenarioA, err := parseScenario(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	scenarioB, err := parseScenario(f.Arg(1))
	if err != nil {
		return fail(err)
	}
	buy, err := parseDate(c.buyDate)
	if err != nil {
		return fail(err)
	}
	sell, err := parseDate(c.sellDate)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	comparison, err := newSimulator().Compare(ctx, scenarioA, scenarioB, buy, sell)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ComparisonMarkdown(comparison))
	return subcommands.ExitSuccess
}
