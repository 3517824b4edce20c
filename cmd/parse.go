package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nroux/stocksim"
	"github.com/nroux/stocksim/date"
)

// parseLeg parses a single "TICKER:AMOUNT" holding, e.g. "AAPL:1000".
func parseLeg(s string) (stocksim.Leg, error) {
	ticker, amount, ok := strings.Cut(s, ":")
	if !ok {
		return stocksim.Leg{}, fmt.Errorf("%w: holding %q: want TICKER:AMOUNT", stocksim.ErrInvalidRequest, s)
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return stocksim.Leg{}, fmt.Errorf("%w: holding %q: empty ticker", stocksim.ErrInvalidRequest, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return stocksim.Leg{}, fmt.Errorf("%w: holding %q: bad amount: %v", stocksim.ErrInvalidRequest, s, err)
	}
	return stocksim.Leg{Ticker: ticker, Amount: money(v)}, nil
}

// parseLegs parses one holding per argument.
func parseLegs(args []string) ([]stocksim.Leg, error) {
	legs := make([]stocksim.Leg, 0, len(args))
	for _, arg := range args {
		leg, err := parseLeg(arg)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// parseScenario parses a comma-separated basket, e.g. "AAPL:600,MSFT:400".
func parseScenario(s string) ([]stocksim.Leg, error) {
	return parseLegs(strings.Split(s, ","))
}

// parseDate parses a command line date flag. The empty string is the zero
// date, which downstream operations read as "today".
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: bad date %q: want YYYY-MM-DD", stocksim.ErrInvalidRequest, s)
	}
	return d, nil
}

// parseTickers uppercases and deduplicates the ticker arguments, keeping
// first-seen order.
func parseTickers(args []string) []string {
	seen := make(map[string]bool, len(args))
	tickers := make([]string, 0, len(args))
	for _, arg := range args {
		t := strings.ToUpper(strings.TrimSpace(arg))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tickers = append(tickers, t)
	}
	return tickers
}
