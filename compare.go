package stocksim

import (
	"context"

	"github.com/nroux/stocksim/date"
)

// Winner identifies the outcome of a scenario comparison.
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "tie"
)

// Comparison contrasts two baskets evaluated over the same period.
//
// The two scenarios are independent failure domains: a failing leg in one
// scenario voids that scenario only (ErrA/ErrB), the other side still
// reports its full portfolio result. Winner is set only when both sides
// computed.
type Comparison struct {
	ScenarioA *PortfolioResult
	ScenarioB *PortfolioResult
	ErrA      error
	ErrB      error
	Winner    Winner
	Margin    Percent // absolute difference in total percentage return
}

// Compare evaluates both baskets over the shared buy/sell dates and names
// the scenario with the higher total percentage return. Returns within a
// 1e-9 relative epsilon of each other are a tie.
func (s *Simulator) Compare(ctx context.Context, scenarioA, scenarioB []Leg, buyDate, sellDate date.Date) (*Comparison, error) {
	if len(scenarioA) == 0 || len(scenarioB) == 0 {
		return nil, invalidf("both scenarios need at least one leg")
	}

	c := &Comparison{}
	c.ScenarioA, c.ErrA = s.Portfolio(ctx, scenarioA, buyDate, sellDate)
	c.ScenarioB, c.ErrB = s.Portfolio(ctx, scenarioB, buyDate, sellDate)
	if c.ErrA != nil || c.ErrB != nil {
		return c, nil
	}

	a, b := c.ScenarioA.Return, c.ScenarioB.Return
	c.Margin = Percent(abs(float64(a - b)))
	switch {
	case a.Equal(b):
		c.Winner = WinnerTie
		c.Margin = 0
	case a > b:
		c.Winner = WinnerA
	default:
		c.Winner = WinnerB
	}
	return c, nil
}
