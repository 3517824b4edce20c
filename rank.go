package stocksim

import (
	"context"
	"errors"
	"sort"

	"github.com/nroux/stocksim/date"
)

// RankingEntry is one ranked result. Ranks are 1-based and dense: tickers
// with equal returns share a rank and keep their input order.
type RankingEntry struct {
	Rank   int
	Result *Result
}

// FailedTicker records a ticker excluded from a ranking and why.
type FailedTicker struct {
	Ticker string
	Err    error
}

// Ranking is the outcome of ranking a set of tickers over a shared
// (buy date, amount, sell date).
type Ranking struct {
	Entries  []RankingEntry
	Failed   []FailedTicker
	BuyDate  date.Date
	SellDate date.Date // zero means "now"
	Amount   Money
}

// Rank simulates the same (buy date, amount, sell date) for every ticker and
// orders the outcomes by percentage return, best first.
//
// Ranking is exploratory, so it degrades gracefully: a ticker whose price
// lookup fails is excluded and reported in Failed instead of failing the
// batch. Invalid shared inputs still fail the whole call. topN <= 0 or
// beyond the number of successful tickers returns everything.
func (s *Simulator) Rank(ctx context.Context, tickers []string, buyDate date.Date, amount Money, sellDate date.Date, topN int) (*Ranking, error) {
	if len(tickers) == 0 {
		return nil, invalidf("no tickers to rank")
	}

	reqs := make([]Request, len(tickers))
	for i, ticker := range tickers {
		reqs[i] = Request{Ticker: ticker, BuyDate: buyDate, Amount: amount, SellDate: sellDate}
	}

	results, errs := s.simulateAll(ctx, reqs)

	ranking := &Ranking{BuyDate: buyDate, SellDate: sellDate, Amount: amount}
	ordered := make([]*Result, 0, len(tickers))
	for i, err := range errs {
		switch {
		case err == nil:
			ordered = append(ordered, results[i])
		case errors.Is(err, ErrPriceUnavailable):
			ranking.Failed = append(ranking.Failed, FailedTicker{Ticker: tickers[i], Err: err})
		default:
			return nil, err
		}
	}

	// Stable, so tickers with identical returns keep their input order.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Return > ordered[j].Return
	})

	if topN > 0 && topN < len(ordered) {
		ordered = ordered[:topN]
	}

	rank := 1
	for i, r := range ordered {
		if i > 0 && !r.Return.Equal(ordered[i-1].Return) {
			rank++
		}
		ranking.Entries = append(ranking.Entries, RankingEntry{Rank: rank, Result: r})
	}
	return ranking, nil
}
