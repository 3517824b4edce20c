// Package yahoo implements the stocksim quote provider against the public
// Yahoo Finance chart API.
//
// Tickers use Yahoo's conventions, including asset-class suffixes such as
// "BTC-USD" for crypto pairs or "EURUSD=X" for currency pairs; the package
// passes them through as opaque symbols.
//
// Responses are cached on disk with a daily key, so repeated simulations of
// the same period cost one request per ticker per day.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/nroux/stocksim"
	"github.com/nroux/stocksim/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// lookback is how far PriceOn searches backwards for a prior trading day
// with an observation. Two weeks cover any weekend/holiday run.
const lookback = 14 // days

// Client is a QuoteProvider backed by the Yahoo Finance chart API.
// It is safe for concurrent use.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	mu         sync.Mutex
	histories  map[string]*date.History[float64]
	currencies map[string]string
	names      map[string]string
}

// NewClient returns a client with the daily disk HTTP cache.
func NewClient() *Client {
	return &Client{
		HTTP:       newDailyCachingClient(),
		BaseURL:    defaultBaseURL,
		histories:  make(map[string]*date.History[float64]),
		currencies: make(map[string]string),
		names:      make(map[string]string),
	}
}

var _ stocksim.QuoteProvider = (*Client)(nil)

// window fetches daily closes for [from, to] and merges them into the
// per-ticker history.
func (c *Client) window(ctx context.Context, ticker string, from, to date.Date) error {
	ch, err := fetchDaily(ctx, c.HTTP, c.BaseURL, ticker, from, to)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.histories[ticker]
	if !ok {
		h = &date.History[float64]{}
		c.histories[ticker] = h
	}
	for on, price := range ch.history.Values() {
		h.Append(on, price)
	}
	if ch.currency != "" {
		c.currencies[ticker] = ch.currency
	}
	if ch.name != "" {
		c.names[ticker] = ch.name
	}
	return nil
}

func (c *Client) point(ticker string, on date.Date, price float64) stocksim.PricePoint {
	currency := c.currencies[ticker]
	if currency == "" {
		currency = "USD"
	}
	return stocksim.PricePoint{On: on, Price: stocksim.M(price, currency)}
}

// PriceOn returns the close on the given day, or on the nearest prior
// trading day with an observation. It never snaps forward.
func (c *Client) PriceOn(ctx context.Context, ticker string, on date.Date) (stocksim.PricePoint, error) {
	if err := c.window(ctx, ticker, on.Add(-lookback), on); err != nil {
		return stocksim.PricePoint{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	day, price, ok := c.histories[ticker].AsOf(on)
	if !ok {
		return stocksim.PricePoint{}, fmt.Errorf("%s: no trading data on or before %s", ticker, on)
	}
	return c.point(ticker, day, price), nil
}

// Latest returns the most recent available close.
func (c *Client) Latest(ctx context.Context, ticker string) (stocksim.PricePoint, error) {
	today := date.Today()
	if err := c.window(ctx, ticker, today.Add(-lookback), today); err != nil {
		return stocksim.PricePoint{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	day, price := c.histories[ticker].Latest()
	if day.IsZero() {
		return stocksim.PricePoint{}, fmt.Errorf("%s: no current data", ticker)
	}
	return c.point(ticker, day, price), nil
}

// CompanyName returns the display name Yahoo reports for the ticker, or the
// ticker itself when none is known. Lookup failures are not reported: the
// name is cosmetic and never required for computation.
func (c *Client) CompanyName(ctx context.Context, ticker string) string {
	c.mu.Lock()
	name, ok := c.names[ticker]
	c.mu.Unlock()
	if ok {
		return name
	}

	today := date.Today()
	if err := c.window(ctx, ticker, today.Add(-lookback), today); err != nil {
		return ticker
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if name := c.names[ticker]; name != "" {
		return name
	}
	return ticker
}
