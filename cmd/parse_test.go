package cmd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nroux/stocksim"
)

func TestParseLeg(t *testing.T) {
	tests := []struct {
		in     string
		ticker string
		amount float64
		ok     bool
	}{
		{"AAPL:1000", "AAPL", 1000, true},
		{"msft:400.50", "MSFT", 400.50, true},
		{" nvda : 250 ", "NVDA", 250, true},
		{"AAPL", "", 0, false},       // no separator
		{":1000", "", 0, false},      // empty ticker
		{"AAPL:ten", "", 0, false},   // bad amount
		{"AAPL:1000:2", "", 0, false}, // amount is not a number either
	}
	for _, tc := range tests {
		leg, err := parseLeg(tc.in)
		if !tc.ok {
			if err == nil {
				t.Errorf("parseLeg(%q): want error, got %+v", tc.in, leg)
			} else if !errors.Is(err, stocksim.ErrInvalidRequest) {
				t.Errorf("parseLeg(%q): error %v does not wrap ErrInvalidRequest", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLeg(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if leg.Ticker != tc.ticker {
			t.Errorf("parseLeg(%q): ticker = %q, want %q", tc.in, leg.Ticker, tc.ticker)
		}
		if got := leg.Amount.AsFloat(); got != tc.amount {
			t.Errorf("parseLeg(%q): amount = %v, want %v", tc.in, got, tc.amount)
		}
	}
}

func TestParseScenario(t *testing.T) {
	legs, err := parseScenario("AAPL:600,msft:400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("got %d legs, want 2", len(legs))
	}
	if legs[0].Ticker != "AAPL" || legs[1].Ticker != "MSFT" {
		t.Errorf("tickers = %q, %q, want AAPL, MSFT", legs[0].Ticker, legs[1].Ticker)
	}

	if _, err := parseScenario("AAPL:600,,MSFT:400"); err == nil {
		t.Error("empty holding in scenario: want error, got none")
	}
}

func TestParseTickers(t *testing.T) {
	got := parseTickers([]string{"aapl", "MSFT", "AAPL", " ", "msft", "GOOGL"})
	want := []string{"AAPL", "MSFT", "GOOGL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseTickers = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("")
	if err != nil || !d.IsZero() {
		t.Errorf("parseDate(\"\") = %v, %v, want zero date and no error", d, err)
	}

	d, err = parseDate("2024-02-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2024-02-02" {
		t.Errorf("parseDate(\"2024-02-02\") = %v", d)
	}

	if _, err := parseDate("02/02/2024"); !errors.Is(err, stocksim.ErrInvalidRequest) {
		t.Errorf("parseDate with bad layout: error %v does not wrap ErrInvalidRequest", err)
	}
}
