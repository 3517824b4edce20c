package stocksim

import (
	"context"
	"fmt"
	"testing"

	"github.com/nroux/stocksim/date"
)

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// mustDate is a shorthand for date.MustParse in fixtures.
func mustDate(str string) date.Date { return date.MustParse(str) }

// memQuotes is an in-memory QuoteProvider fixture.
type memQuotes struct {
	hist  map[string]*date.History[float64]
	names map[string]string
}

func newMemQuotes() *memQuotes {
	return &memQuotes{
		hist:  make(map[string]*date.History[float64]),
		names: make(map[string]string),
	}
}

// add registers a ticker with its display name and its daily closes.
func (m *memQuotes) add(ticker, name string, closes map[string]float64) *memQuotes {
	h := &date.History[float64]{}
	for day, price := range closes {
		h.Append(date.MustParse(day), price)
	}
	m.hist[ticker] = h
	m.names[ticker] = name
	return m
}

func (m *memQuotes) PriceOn(_ context.Context, ticker string, on date.Date) (PricePoint, error) {
	h, ok := m.hist[ticker]
	if !ok {
		return PricePoint{}, fmt.Errorf("unknown ticker %q", ticker)
	}
	day, price, ok := h.AsOf(on)
	if !ok {
		return PricePoint{}, fmt.Errorf("no observation on or before %s", on)
	}
	return PricePoint{On: day, Price: USD(price)}, nil
}

func (m *memQuotes) Latest(_ context.Context, ticker string) (PricePoint, error) {
	h, ok := m.hist[ticker]
	if !ok || h.Len() == 0 {
		return PricePoint{}, fmt.Errorf("unknown ticker %q", ticker)
	}
	day, price := h.Latest()
	return PricePoint{On: day, Price: USD(price)}, nil
}

func (m *memQuotes) CompanyName(_ context.Context, ticker string) string {
	if name, ok := m.names[ticker]; ok {
		return name
	}
	return ticker
}

var _ QuoteProvider = (*memQuotes)(nil)

// newTestSimulator returns a simulator pinned to a fixed valuation date.
func newTestSimulator(quotes QuoteProvider, today string) *Simulator {
	return &Simulator{Quotes: quotes, Today: date.MustParse(today)}
}

// approx fails the test unless got is within tol of want.
func approx(t *testing.T, what string, got, want, tol float64) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		t.Errorf("%s = %v, want %v (±%v)", what, got, want, tol)
	}
}
