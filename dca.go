package stocksim

import (
	"context"
	"errors"

	"github.com/nroux/stocksim/date"
)

// DCAResult is the outcome of a dollar-cost-averaging simulation: the same
// amount invested on the same day of every month over a period.
type DCAResult struct {
	Ticker      string
	CompanyName string
	Start       date.Date
	End         date.Date
	PerPeriod   Money
	Purchases   int
	Invested    Money
	Shares      Quantity
	AvgCost     Money // average cost per share actually paid
	FinalPrice  Money // price used to value the accumulated shares
	FinalValue  Money
	Profit      Money
	Return      Percent
}

// DollarCostAverage simulates buying perMonth of ticker every month from
// start to end (zero end means "now"). Months before the instrument has any
// observation are skipped, mirroring what an investor could actually have
// bought. The accumulated shares are valued at the end date's price, or at
// the latest available price for an open-ended period.
func (s *Simulator) DollarCostAverage(ctx context.Context, ticker string, start, end date.Date, perMonth Money) (*DCAResult, error) {
	if ticker == "" {
		return nil, invalidf("empty ticker")
	}
	if !perMonth.IsPositive() {
		return nil, invalidf("%s: amount %s must be positive", ticker, perMonth)
	}
	if start.After(s.Today) {
		return nil, invalidf("%s: start date %s is in the future", ticker, start)
	}
	open := end.IsZero()
	if open {
		end = s.Today
	}
	if start.After(end) {
		return nil, invalidf("%s: start date %s is after end date %s", ticker, start, end)
	}

	res := &DCAResult{Ticker: ticker, Start: start, End: end, PerPeriod: perMonth}
	for on := start; !on.After(end); on = on.AddMonths(1) {
		pt, err := s.Quotes.PriceOn(ctx, ticker, on)
		if err != nil {
			if errors.Is(unavailable(ticker, on, err), ErrPriceUnavailable) {
				continue // no observation yet, nothing to buy this month
			}
			return nil, err
		}
		if !pt.Price.IsPositive() {
			continue
		}
		res.Shares = res.Shares.Add(perMonth.DivPrice(pt.Price))
		res.Invested = res.Invested.Add(perMonth)
		res.Purchases++
	}
	if res.Purchases == 0 {
		return nil, unavailable(ticker, start, errors.New("no purchase dates with data"))
	}

	var final PricePoint
	var err error
	if open {
		final, err = s.Quotes.Latest(ctx, ticker)
		if err != nil {
			return nil, unavailable(ticker, date.Date{}, err)
		}
	} else {
		final, err = s.Quotes.PriceOn(ctx, ticker, end)
		if err != nil {
			return nil, unavailable(ticker, end, err)
		}
	}

	res.CompanyName = s.Quotes.CompanyName(ctx, ticker)
	res.FinalPrice = final.Price
	res.FinalValue = final.Price.Mul(res.Shares)
	res.Profit = res.FinalValue.Sub(res.Invested)
	res.Return = Percent(res.Profit.AsFloat() / res.Invested.AsFloat() * 100)
	res.AvgCost = res.Invested.Div(res.Shares)
	return res, nil
}
