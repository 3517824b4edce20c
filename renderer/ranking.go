package renderer

import (
	"fmt"
	"strings"

	"github.com/nroux/stocksim"
)

// RankingMarkdown renders a best-of report, one row per ranked ticker, with
// the excluded tickers listed after the table.
func RankingMarkdown(r *stocksim.Ranking) string {
	var b strings.Builder

	when := "now"
	if !r.SellDate.IsZero() {
		when = r.SellDate.String()
	}
	fmt.Fprintf(&b, "# Best performers, %s invested %s to %s\n\n", r.Amount, r.BuyDate, when)

	fmt.Fprintln(&b, "| # | Ticker | Final Value | Return | Annualized |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|")
	for _, e := range r.Entries {
		res := e.Result
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			e.Rank, label(res.Ticker, res.CompanyName), res.FinalValue,
			res.Return.SignedString(), res.Annualized.SignedString())
	}

	if len(r.Failed) > 0 {
		tickers := make([]string, len(r.Failed))
		for i, f := range r.Failed {
			tickers[i] = f.Ticker
		}
		fmt.Fprintf(&b, "\nSkipped (no data): %s\n", strings.Join(tickers, ", "))
	}
	return b.String()
}
