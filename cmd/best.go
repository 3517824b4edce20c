package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim/renderer"
)

// bestCmd holds the flags for the 'best' subcommand.
type bestCmd struct {
	buyDate  string
	sellDate string
	amount   float64
	top      int
}

func (*bestCmd) Name() string { return "best" }
func (*bestCmd) Synopsis() string {
	return "rank tickers by the return of an identical investment"
}
func (*bestCmd) Usage() string {
	return `ssim best -d <buy-date> [-s <sell-date>] [-a <amount>] [-top n] <ticker>...

  Runs the same hypothetical investment for each ticker and ranks them by
  total return, best first. Tickers with equal returns share a rank.
  Tickers without price data are listed separately and do not abort the
  ranking.

Usage Examples:
# Which of the big caps rewarded a 2020 buy the most?
$ ssim best -d 2020-01-02 -top 3 AAPL MSFT GOOGL AMZN NVDA META TSLA
`
}

func (c *bestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyDate, "d", "", "Buy date (YYYY-MM-DD)")
	f.StringVar(&c.sellDate, "s", "", "Sell date (defaults to today)")
	f.Float64Var(&c.amount, "a", 1000, "Amount invested in each ticker")
	f.IntVar(&c.top, "top", 10, "Keep only the n best performers (0 keeps all)")
}

func (c *bestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := parseTickers(f.Args())
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one ticker")
		return subcommands.ExitUsageError
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

	ranking, err := newSimulator().Rank(ctx, tickers, buy, money(c.amount), sell, c.top)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RankingMarkdown(ranking))
	return subcommands.ExitSuccess
}
