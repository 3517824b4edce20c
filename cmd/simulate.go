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
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	buyDate   string
	sellDate  string
	amount    float64
	benchmark bool
	benchTick string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "simulate a lump-sum investment in a single stock"
}
func (*simulateCmd) Usage() string {
	return `ssim simulate -d <buy-date> [-a <amount>] [-s <sell-date>] [-benchmark] <ticker>

  Computes what an investment made on the buy date would be worth on the
  sell date (today when -s is omitted). Dates falling on a non-trading day
  snap back to the most recent trading day with a price.

Usage Examples:
# What would $1000 in Apple bought end of 2019 be worth today?
$ ssim simulate -d 2019-12-31 AAPL

# Same position sold on a fixed date, compared against the S&P 500.
$ ssim simulate -d 2019-12-31 -s 2024-02-02 -benchmark AAPL
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.buyDate, "d", "", "Buy date (YYYY-MM-DD)")
	f.StringVar(&c.sellDate, "s", "", "Sell date (defaults to today)")
	f.Float64Var(&c.amount, "a", 1000, "Amount to invest")
	f.BoolVar(&c.benchmark, "benchmark", false, "Also run the same investment against a benchmark")
	f.StringVar(&c.benchTick, "b", stocksim.DefaultBenchmark, "Benchmark ticker")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: want exactly one ticker, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	req, err := c.request(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	sim := newSimulator()
	if c.benchmark {
		b, err := sim.Benchmark(ctx, req, strings.ToUpper(c.benchTick))
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.BenchmarkMarkdown(b))
		return subcommands.ExitSuccess
	}

	res, err := sim.Simulate(ctx, req)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ResultMarkdown(res))
	return subcommands.ExitSuccess
}

// request builds the simulation request from the parsed flags.
func (c *simulateCmd) request(ticker string) (stocksim.Request, error) {
	buy, err := parseDate(c.buyDate)
	if err != nil {
		return stocksim.Request{}, err
	}
	sell, err := parseDate(c.sellDate)
	if err != nil {
		return stocksim.Request{}, err
	}
	return stocksim.Request{
		Ticker:   strings.ToUpper(ticker),
		BuyDate:  buy,
		Amount:   money(c.amount),
		SellDate: sell,
	}, nil
}
