package renderer

import (
	"fmt"
	"strings"

	"github.com/nroux/stocksim"
)

// PortfolioMarkdown renders a basket report with a per-leg breakdown and the
// pooled totals.
func PortfolioMarkdown(p *stocksim.PortfolioResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio from %s to %s\n\n", p.PeriodStart, p.PeriodEnd)

	fmt.Fprintln(&b, "| Ticker | Invested | Final Value | Return | Annualized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, leg := range p.Legs {
		r := leg.Result
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Ticker, r.Invested, r.FinalValue, r.Return.SignedString(), r.Annualized.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** | **%s** |\n",
		p.Invested, p.FinalValue, p.Return.SignedString(), p.Annualized.SignedString())

	fmt.Fprintf(&b, "\nProfit: %s\n", p.Profit.SignedString())
	return b.String()
}
