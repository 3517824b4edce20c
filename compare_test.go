package stocksim

import (
	"context"
	"errors"
	"testing"
)

func TestCompareIdenticalScenariosTie(t *testing.T) {
	sim := newTestSimulator(basketQuotes(), "2024-02-04")

	legs := []Leg{
		{Ticker: "AAPL", Amount: USD(1000)},
		{Ticker: "TSLA", Amount: USD(500)},
	}
	c, err := sim.Compare(context.Background(), legs, legs, mustDate("2020-01-02"), mustDate("2024-02-02"))
	if err != nil {
		t.Fatalf("Compare() unexpected error = %v", err)
	}
	if c.Winner != WinnerTie {
		t.Errorf("Winner = %q, want %q", c.Winner, WinnerTie)
	}
	if c.Margin != 0 {
		t.Errorf("Margin = %v, want 0", c.Margin)
	}
}

func TestCompareWinner(t *testing.T) {
	sim := newTestSimulator(basketQuotes(), "2024-02-04")
	buy, sell := mustDate("2020-01-02"), mustDate("2024-02-02")

	tsla := []Leg{{Ticker: "TSLA", Amount: USD(1000)}} // ~6.6x
	aapl := []Leg{{Ticker: "AAPL", Amount: USD(1000)}} // ~2.5x

	c, err := sim.Compare(context.Background(), tsla, aapl, buy, sell)
	if err != nil {
		t.Fatalf("Compare() unexpected error = %v", err)
	}
	if c.Winner != WinnerA {
		t.Errorf("Winner = %q, want %q", c.Winner, WinnerA)
	}
	wantMargin := float64(c.ScenarioA.Return - c.ScenarioB.Return)
	approx(t, "Margin", float64(c.Margin), wantMargin, 1e-9)

	// Swapping the scenarios flips the winner, not the margin.
	c2, err := sim.Compare(context.Background(), aapl, tsla, buy, sell)
	if err != nil {
		t.Fatalf("Compare() unexpected error = %v", err)
	}
	if c2.Winner != WinnerB {
		t.Errorf("Winner = %q, want %q", c2.Winner, WinnerB)
	}
	approx(t, "Margin after swap", float64(c2.Margin), wantMargin, 1e-9)
}

// A failure in one scenario does not prevent reporting the other.
func TestCompareIndependentFailureDomains(t *testing.T) {
	sim := newTestSimulator(basketQuotes(), "2024-02-04")

	good := []Leg{{Ticker: "AAPL", Amount: USD(1000)}}
	bad := []Leg{{Ticker: "NOPE", Amount: USD(1000)}}

	c, err := sim.Compare(context.Background(), good, bad, mustDate("2020-01-02"), mustDate("2024-02-02"))
	if err != nil {
		t.Fatalf("Compare() unexpected error = %v", err)
	}
	if c.ScenarioA == nil || c.ErrA != nil {
		t.Errorf("scenario A should have computed, got err %v", c.ErrA)
	}
	if !errors.Is(c.ErrB, ErrPriceUnavailable) {
		t.Errorf("ErrB = %v, want ErrPriceUnavailable", c.ErrB)
	}
	if c.Winner != "" {
		t.Errorf("Winner = %q, want unset when a scenario failed", c.Winner)
	}
}

func TestCompareEmptyScenario(t *testing.T) {
	sim := newTestSimulator(basketQuotes(), "2024-02-04")
	good := []Leg{{Ticker: "AAPL", Amount: USD(1000)}}

	if _, err := sim.Compare(context.Background(), good, nil, mustDate("2020-01-02"), mustDate("2024-02-02")); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Compare() error = %v, want ErrInvalidRequest", err)
	}
}
