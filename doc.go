// Package stocksim answers "what would a historical investment be worth
// today (or at a chosen date)?" for tradable instruments: equities, ETFs,
// crypto pairs and currency pairs.
//
// The core functionalities include:
//   - Single position simulation: given a ticker, a buy date, an amount and
//     a sell date (or "now"), derive shares, final value, profit, percentage
//     return and annualized return.
//   - Portfolio aggregation: evaluate a basket of (ticker, amount) legs over
//     a shared period and pool the totals.
//   - Ranking: evaluate a set of tickers for the same (date, amount) and
//     order them by performance.
//   - Scenario comparison: contrast two baskets and report the winner.
//   - Dollar-cost averaging: simulate recurring monthly purchases.
//
// Prices come from a QuoteProvider collaborator; all computations are pure
// functions of their inputs plus that provider, with an explicit valuation
// date so that results are deterministic and testable with fixtures.
//
// This package serves as the foundational logic for the `ssim` command-line
// tool; no textual formatting happens here.
package stocksim
