package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nroux/stocksim/date"
)

// This file contains functions to access the Yahoo Finance chart API.

// jwget fetches a JSON document from addr into a generic value, so that it
// can be explored with jsonpath.
func jwget(ctx context.Context, client *http.Client, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// The chart endpoint rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stocksim)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		// 404 still carries a JSON error payload worth surfacing.
		return nil, fmt.Errorf("GET %s: %s", addr, resp.Status)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("GET %s: invalid JSON: %w", addr, err)
	}
	return doc, nil
}

// chart holds the decoded daily series of one chart API response.
type chart struct {
	history  date.History[float64]
	currency string
	name     string
}

// path evaluates a jsonpath expression, returning the zero value when the
// path does not resolve. The chart payload nests its values deep enough that
// jsonpath beats five levels of throwaway struct types.
func path[T any](doc any, expr string) (T, bool) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// fetchDaily returns the daily closes for symbol in [from, to], with the
// currency and display name reported by the API.
//
// Chart API shape:
//
//	{"chart": {"result": [{
//	    "meta": {"currency": "USD", "symbol": "AAPL", "shortName": "Apple Inc."},
//	    "timestamp": [1704205800, ...],
//	    "indicators": {"quote": [{"close": [185.64, ...], ...}]}
//	}], "error": null}}
func fetchDaily(ctx context.Context, client *http.Client, base, symbol string, from, to date.Date) (*chart, error) {
	// period2 is exclusive, push it one day to include 'to'.
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		base, symbol, from.Unix(), to.Add(1).Unix())

	doc, err := jwget(ctx, client, addr)
	if err != nil {
		return nil, err
	}

	if desc, ok := path[string](doc, "$.chart.error.description"); ok && desc != "" {
		return nil, fmt.Errorf("%s: %s", symbol, desc)
	}

	timestamps, ok := path[[]any](doc, "$.chart.result[0].timestamp")
	if !ok {
		// A known symbol with no observation in range answers with a
		// result and no timestamps at all.
		timestamps = nil
	}
	closes, _ := path[[]any](doc, "$.chart.result[0].indicators.quote[0].close")

	c := &chart{}
	c.currency, _ = path[string](doc, "$.chart.result[0].meta.currency")
	if c.name, ok = path[string](doc, "$.chart.result[0].meta.shortName"); !ok {
		c.name, _ = path[string](doc, "$.chart.result[0].meta.longName")
	}

	for i, ts := range timestamps {
		sec, ok := ts.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		price, ok := closes[i].(float64) // null on days with no close
		if !ok {
			continue
		}
		on := date.New(time.Unix(int64(sec), 0).UTC().Date())
		c.history.Append(on, price)
	}
	return c, nil
}
