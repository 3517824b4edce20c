package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	buyDate  string
	sellDate string
}

func (*portfolioCmd) Name() string { return "portfolio" }
func (*portfolioCmd) Synopsis() string {
	return "simulate a basket of lump-sum investments bought on the same day"
}
func (*portfolioCmd) Usage() string {
	return `ssim portfolio -d <buy-date> [-s <sell-date>] <ticker>:<amount>...

  Simulates every holding of the basket over the same period and aggregates
  the result: total invested, final value and a single pooled annualized
  return for the basket.

Usage Examples:
# A 60/40 split between Apple and Microsoft since 2020.
$ ssim portfolio -d 2020-01-02 AAPL:600 MSFT:400
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyDate, "d", "", "Buy date (YYYY-MM-DD)")
	f.StringVar(&c.sellDate, "s", "", "Sell date (defaults to today)")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one TICKER:AMOUNT holding")
		return subcommands.ExitUsageError
	}
	legs, err := parseLegs(f.Args())
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

	res, err := newSimulator().Portfolio(ctx, legs, buy, sell)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PortfolioMarkdown(res))
	return subcommands.ExitSuccess
}
