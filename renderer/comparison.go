package renderer

import (
	"fmt"
	"strings"

	"github.com/nroux/stocksim"
)

// ComparisonMarkdown renders the two scenarios side by side and the verdict.
// A scenario that failed to compute renders its error in place of numbers.
func ComparisonMarkdown(c *stocksim.Comparison) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Scenario comparison\n\n")

	scenario := func(name string, p *stocksim.PortfolioResult, err error) {
		fmt.Fprintf(&b, "## Scenario %s\n\n", name)
		if err != nil {
			fmt.Fprintf(&b, "Failed: %v\n\n", err)
			return
		}
		legs := make([]string, len(p.Legs))
		for i, leg := range p.Legs {
			legs[i] = fmt.Sprintf("%s %s", leg.Ticker, leg.Amount)
		}
		fmt.Fprintf(&b, "Holdings: %s\n\n", strings.Join(legs, ", "))
		fmt.Fprintf(&b, "Invested %s → %s (%s)\n\n", p.Invested, p.FinalValue, p.Return.SignedString())
	}
	scenario("A", c.ScenarioA, c.ErrA)
	scenario("B", c.ScenarioB, c.ErrB)

	switch c.Winner {
	case stocksim.WinnerTie:
		fmt.Fprint(&b, "Result: tie\n")
	case stocksim.WinnerA, stocksim.WinnerB:
		fmt.Fprintf(&b, "Winner: scenario %s by %s\n", c.Winner, c.Margin)
	}
	return b.String()
}
