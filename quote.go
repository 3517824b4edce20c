package stocksim

import (
	"context"

	"github.com/nroux/stocksim/date"
)

// PricePoint is one observed price: the trading day it was observed and the
// closing (or latest intraday) price on that day. Price is always positive.
type PricePoint struct {
	On    date.Date `json:"date"`
	Price Money     `json:"price"`
}

// QuoteProvider is the price source collaborator.
//
// Tickers are opaque identifiers: equities, ETFs, crypto pairs and currency
// pairs all go through the same three lookups, only the provider knows about
// vendor-specific suffixes.
type QuoteProvider interface {
	// PriceOn returns the price observed on the given day, or on the nearest
	// prior trading day with an observation. It never snaps forward.
	PriceOn(ctx context.Context, ticker string, on date.Date) (PricePoint, error)

	// Latest returns the most recent available price.
	Latest(ctx context.Context, ticker string) (PricePoint, error)

	// CompanyName returns a display label for the ticker. It is best effort:
	// providers return the ticker itself when no better name is known.
	CompanyName(ctx context.Context, ticker string) string
}
