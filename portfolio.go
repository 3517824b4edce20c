package stocksim

import (
	"context"

	"github.com/nroux/stocksim/date"
)

// Leg is one (ticker, amount) line of a basket. Order matters for display
// but not for totals.
type Leg struct {
	Ticker string
	Amount Money
}

// PortfolioLeg pairs a basket line with its computed result.
type PortfolioLeg struct {
	Leg
	Result *Result
}

// PortfolioResult aggregates a basket evaluated over a shared period.
type PortfolioResult struct {
	Legs        []PortfolioLeg
	Invested    Money
	FinalValue  Money
	Profit      Money
	Return      Percent
	Annualized  Percent
	PeriodStart date.Date // earliest snapped buy date across legs
	PeriodEnd   date.Date // latest snapped sell date across legs
}

// Portfolio evaluates every leg of the basket over the shared buy/sell dates
// and pools the totals. Any leg failure fails the whole portfolio: a partial
// sum is not a trustworthy total. The returned error names the first failing
// ticker in basket order.
//
// The pooled annualized return applies the single-position formula to the
// aggregate invested/final pair over the full period. It is deliberately not
// a weighted average of per-leg annualized rates: compounding a weighted
// average of rates does not reproduce the pooled return.
func (s *Simulator) Portfolio(ctx context.Context, legs []Leg, buyDate, sellDate date.Date) (*PortfolioResult, error) {
	if len(legs) == 0 {
		return nil, invalidf("empty basket")
	}

	reqs := make([]Request, len(legs))
	for i, leg := range legs {
		reqs[i] = Request{Ticker: leg.Ticker, BuyDate: buyDate, Amount: leg.Amount, SellDate: sellDate}
	}

	results, errs := s.simulateAll(ctx, reqs)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	p := &PortfolioResult{Legs: make([]PortfolioLeg, len(legs))}
	for i, leg := range legs {
		r := results[i]
		p.Legs[i] = PortfolioLeg{Leg: leg, Result: r}
		p.Invested = p.Invested.Add(r.Invested)
		p.FinalValue = p.FinalValue.Add(r.FinalValue)
		if p.PeriodStart.IsZero() || r.BuyDate.Before(p.PeriodStart) {
			p.PeriodStart = r.BuyDate
		}
		if r.SellDate.After(p.PeriodEnd) {
			p.PeriodEnd = r.SellDate
		}
	}

	p.Profit = p.FinalValue.Sub(p.Invested)
	p.Return = Percent(p.Profit.AsFloat() / p.Invested.AsFloat() * 100)
	p.Annualized = p.Return
	if days := p.PeriodEnd.Sub(p.PeriodStart); days != 0 {
		p.Annualized = annualize(p.FinalValue.AsFloat()/p.Invested.AsFloat(), float64(days))
	}
	return p, nil
}
