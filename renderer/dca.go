package renderer

import (
	"fmt"
	"strings"

	"github.com/nroux/stocksim"
)

// DCAMarkdown renders a dollar-cost-averaging report.
func DCAMarkdown(r *stocksim.DCAResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Dollar-cost averaging %s\n\n", label(r.Ticker, r.CompanyName))
	fmt.Fprintf(&b, "%s per month from %s to %s\n\n", r.PerPeriod, r.Start, r.End)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Purchases | %d |\n", r.Purchases)
	fmt.Fprintf(&b, "| Invested | %s |\n", r.Invested)
	fmt.Fprintf(&b, "| Shares | %s |\n", r.Shares.StringFixed(4))
	fmt.Fprintf(&b, "| Avg cost/share | %s |\n", r.AvgCost)
	fmt.Fprintf(&b, "| Final price | %s |\n", r.FinalPrice)
	fmt.Fprintf(&b, "| Final value | %s |\n\n", r.FinalValue)

	fmt.Fprintf(&b, "Return: %s (%s)\n", r.Profit.SignedString(), r.Return.SignedString())
	return b.String()
}
