// Package renderer turns simulation results into markdown reports.
// It holds no computation: every number it prints was derived upstream.
package renderer

import (
	"fmt"
	"strings"

	"github.com/nroux/stocksim"
)

// label returns "TICKER (Company Name)" or just the ticker when the display
// name adds nothing.
func label(ticker, name string) string {
	if name == "" || name == ticker {
		return ticker
	}
	return fmt.Sprintf("%s (%s)", ticker, name)
}

// ResultMarkdown renders a single-position simulation report.
func ResultMarkdown(r *stocksim.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", label(r.Ticker, r.CompanyName))
	fmt.Fprintf(&b, "| | Date | Price |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|\n")
	fmt.Fprintf(&b, "| Buy | %s | %s |\n", r.BuyDate, r.BuyPrice)
	fmt.Fprintf(&b, "| Sell | %s | %s |\n\n", r.SellDate, r.SellPrice)

	fmt.Fprintf(&b, "Shares: %s\n\n", r.Shares.StringFixed(4))
	fmt.Fprintf(&b, "Investment: %s → %s\n\n", r.Invested, r.FinalValue)
	fmt.Fprintf(&b, "Return: %s (%s)\n\n", r.Profit.SignedString(), r.Return.SignedString())
	fmt.Fprintf(&b, "Annualized: %s over %d days\n", r.Annualized.SignedString(), r.HoldingDays)

	return b.String()
}

// BenchmarkMarkdown renders an investment next to its benchmark leg.
func BenchmarkMarkdown(r *stocksim.BenchmarkResult) string {
	var b strings.Builder
	inv := r.Investment

	fmt.Fprintf(&b, "# %s vs benchmark\n\n", label(inv.Ticker, inv.CompanyName))
	fmt.Fprintln(&b, "| | Invested | Final Value | Return | Annualized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	row := func(name string, res *stocksim.Result) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			name, res.Invested, res.FinalValue, res.Return.SignedString(), res.Annualized.SignedString())
	}
	row(inv.Ticker, inv)

	if r.Benchmark == nil {
		fmt.Fprintf(&b, "\nBenchmark unavailable: %v\n", r.BenchErr)
		return b.String()
	}
	row(r.Benchmark.Ticker, r.Benchmark)

	verdict := "underperformed"
	if r.Outperformed() {
		verdict = "outperformed"
	}
	fmt.Fprintf(&b, "\n%s %s %s by %s\n", inv.Ticker, verdict, r.Benchmark.Ticker, r.Margin.SignedString())
	return b.String()
}
