package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim"
	"github.com/nroux/stocksim/date"
	"github.com/nroux/stocksim/yahoo"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	on string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the closing price of one or more tickers" }
func (*priceCmd) Usage() string {
	return `ssim price [-d <date>] <ticker>...

  Prints the latest closing price for each ticker, or the closing price on
  a given date (snapping back to the most recent trading day).
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "Date to price at (defaults to the latest close)")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := parseTickers(f.Args())
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one ticker")
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.on)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	quotes := yahoo.NewClient()
	status := subcommands.ExitSuccess
	var b strings.Builder
	for _, ticker := range tickers {
		pt, err := lookup(ctx, quotes, ticker, on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s on %s\n", ticker, pt.Price, pt.On)
	}
	printMarkdown(b.String())
	return status
}

// lookup prices a ticker either at its latest close or on a given day.
func lookup(ctx context.Context, quotes *yahoo.Client, ticker string, on date.Date) (stocksim.PricePoint, error) {
	if on.IsZero() {
		return quotes.Latest(ctx, ticker)
	}
	return quotes.PriceOn(ctx, ticker, on)
}
