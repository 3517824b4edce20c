package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim/renderer"
)

// dcaCmd holds the flags for the 'dca' subcommand.
type dcaCmd struct {
	startDate string
	endDate   string
	perMonth  float64
}

func (*dcaCmd) Name() string { return "dca" }
func (*dcaCmd) Synopsis() string {
	return "simulate a monthly dollar-cost-averaging plan for a single stock"
}
func (*dcaCmd) Usage() string {
	return `ssim dca -d <start-date> [-e <end-date>] [-a <amount>] <ticker>

  Buys the same amount on the same day of every month between the start and
  end dates (today when -e is omitted), then values the accumulated shares
  at the end of the period. Months without price data are skipped.

Usage Examples:
# $500 of Apple every month since 2020.
$ ssim dca -d 2020-01-15 -a 500 AAPL
`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.startDate, "d", "", "First purchase date (YYYY-MM-DD)")
	f.StringVar(&c.endDate, "e", "", "End of the plan (defaults to today)")
	f.Float64Var(&c.perMonth, "a", 500, "Amount to invest each month")
}

func (c *dcaCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: want exactly one ticker, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	start, err := parseDate(c.startDate)
	if err != nil {
		return fail(err)
	}
	end, err := parseDate(c.endDate)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	ticker := strings.ToUpper(f.Arg(0))
	res, err := newSimulator().DollarCostAverage(ctx, ticker, start, end, money(c.perMonth))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DCAMarkdown(res))
	return subcommands.ExitSuccess
}
