package stocksim

import (
	"context"
	"math"

	"github.com/nroux/stocksim/date"
)

// Request describes a single position to simulate.
type Request struct {
	Ticker   string
	BuyDate  date.Date
	Amount   Money
	SellDate date.Date // zero means "now": valued at the latest available price
}

// Result is a single-position simulation outcome. It is fully derived from a
// pair of price points and the invested amount, and never mutated afterwards.
type Result struct {
	Ticker      string    `json:"ticker"`
	CompanyName string    `json:"company_name,omitempty"`
	BuyDate     date.Date `json:"buy_date"` // snapped trading day actually priced
	BuyPrice    Money     `json:"buy_price"`
	SellDate    date.Date `json:"sell_date"`
	SellPrice   Money     `json:"sell_price"`
	Shares      Quantity  `json:"shares"`
	Invested    Money     `json:"invested"`
	FinalValue  Money     `json:"final_value"`
	Profit      Money     `json:"profit"`
	Return      Percent   `json:"percent_return"`
	Annualized  Percent   `json:"annualized_return"`
	HoldingDays int       `json:"holding_days"`
}

// Simulator runs investment simulations against a quote provider.
//
// Today is the valuation date for "now" requests. It is a plain field rather
// than a call to date.Today() inside the computations, so that a fixed date
// and a fixture provider reproduce the exact same numbers.
type Simulator struct {
	Quotes QuoteProvider
	Today  date.Date
}

// New returns a Simulator valuing "now" requests at the current date.
func New(quotes QuoteProvider) *Simulator {
	return &Simulator{Quotes: quotes, Today: date.Today()}
}

// resolveSell returns the effective sell date of a request.
func (s *Simulator) resolveSell(req Request) date.Date {
	if req.SellDate.IsZero() {
		return s.Today
	}
	return req.SellDate
}

func (s *Simulator) validate(req Request) error {
	if req.Ticker == "" {
		return invalidf("empty ticker")
	}
	if !req.Amount.IsPositive() {
		return invalidf("%s: amount %s must be positive", req.Ticker, req.Amount)
	}
	if req.BuyDate.After(s.Today) {
		return invalidf("%s: buy date %s is in the future", req.Ticker, req.BuyDate)
	}
	if sell := s.resolveSell(req); req.BuyDate.After(sell) {
		return invalidf("%s: buy date %s is after sell date %s", req.Ticker, req.BuyDate, sell)
	}
	return nil
}

// Simulate computes what req.Amount invested in req.Ticker on req.BuyDate
// would be worth on req.SellDate (or now).
//
// Requested dates falling on a non-trading day snap to the nearest prior
// trading day with an observation; the holding period is measured between
// the snapped dates, so buy and sell are treated identically.
func (s *Simulator) Simulate(ctx context.Context, req Request) (*Result, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	buy, err := s.Quotes.PriceOn(ctx, req.Ticker, req.BuyDate)
	if err != nil {
		return nil, unavailable(req.Ticker, req.BuyDate, err)
	}

	var sell PricePoint
	if req.SellDate.IsZero() {
		sell, err = s.Quotes.Latest(ctx, req.Ticker)
		if err != nil {
			return nil, unavailable(req.Ticker, date.Date{}, err)
		}
	} else {
		sell, err = s.Quotes.PriceOn(ctx, req.Ticker, req.SellDate)
		if err != nil {
			return nil, unavailable(req.Ticker, req.SellDate, err)
		}
	}

	if !buy.Price.IsPositive() {
		return nil, unavailable(req.Ticker, buy.On, invalidf("non-positive price %s", buy.Price))
	}

	shares := req.Amount.DivPrice(buy.Price)
	finalValue := sell.Price.Mul(shares)
	profit := finalValue.Sub(req.Amount)
	percent := Percent(profit.AsFloat() / req.Amount.AsFloat() * 100)

	days := sell.On.Sub(buy.On)
	annualized := percent
	if days != 0 {
		annualized = annualize(finalValue.AsFloat()/req.Amount.AsFloat(), float64(days))
	}

	return &Result{
		Ticker:      req.Ticker,
		CompanyName: s.Quotes.CompanyName(ctx, req.Ticker),
		BuyDate:     buy.On,
		BuyPrice:    buy.Price,
		SellDate:    sell.On,
		SellPrice:   sell.Price,
		Shares:      shares,
		Invested:    req.Amount,
		FinalValue:  finalValue,
		Profit:      profit,
		Return:      percent,
		Annualized:  annualized,
		HoldingDays: days,
	}, nil
}

// annualize returns the compounded yearly rate that reproduces the given
// total-return ratio over the given number of days.
//
// A non-positive ratio cannot be raised to a fractional exponent; under the
// long-only share model it can only come from a zero sell price, which is a
// total loss, so it annualizes to the -100% floor.
func annualize(ratio, days float64) Percent {
	if ratio <= 0 {
		return -100
	}
	return Percent((math.Pow(ratio, 365.25/days) - 1) * 100)
}
