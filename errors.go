package stocksim

import (
	"errors"
	"fmt"

	"github.com/nroux/stocksim/date"
)

// The two failure families of the simulator. Every error returned by this
// package wraps one of them, so callers dispatch with errors.Is.
var (
	// ErrInvalidRequest is a local input-validation failure: bad amount,
	// buy date after sell date, empty ticker or basket. Never worth a retry.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrPriceUnavailable means the quote provider could not resolve a
	// price: unknown ticker, no observation in range, or lookup timeout.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// invalidf returns an error wrapping ErrInvalidRequest.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// unavailable wraps a provider failure with the offending ticker and date,
// for user-facing diagnostics. A zero date means the latest-price lookup.
func unavailable(ticker string, on date.Date, err error) error {
	if errors.Is(err, ErrPriceUnavailable) || errors.Is(err, ErrInvalidRequest) {
		return err // already carries its context
	}
	if on.IsZero() {
		return fmt.Errorf("%w: %s (latest): %v", ErrPriceUnavailable, ticker, err)
	}
	return fmt.Errorf("%w: %s on %s: %v", ErrPriceUnavailable, ticker, on, err)
}
