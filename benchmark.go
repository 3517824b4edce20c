package stocksim

import "context"

// DefaultBenchmark is the ticker used when no benchmark is specified.
const DefaultBenchmark = "SPY"

// BenchmarkResult contrasts an investment with the same amount put into a
// benchmark instrument over the same period.
type BenchmarkResult struct {
	Investment *Result
	Benchmark  *Result
	BenchErr   error   // set when the benchmark leg could not be priced
	Margin     Percent // investment return minus benchmark return
}

// Outperformed reports whether the investment beat the benchmark.
func (b *BenchmarkResult) Outperformed() bool {
	return b.Benchmark != nil && b.Investment.Return > b.Benchmark.Return
}

// Benchmark simulates the request and replays it against benchTicker
// (DefaultBenchmark when empty) with the same dates and amount.
//
// The benchmark is informative only: when its prices are unavailable the
// investment result is still returned, with BenchErr set.
func (s *Simulator) Benchmark(ctx context.Context, req Request, benchTicker string) (*BenchmarkResult, error) {
	if benchTicker == "" {
		benchTicker = DefaultBenchmark
	}

	investment, err := s.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &BenchmarkResult{Investment: investment}
	bench := req
	bench.Ticker = benchTicker
	res.Benchmark, res.BenchErr = s.Simulate(ctx, bench)
	if res.BenchErr != nil {
		res.Benchmark = nil
		return res, nil
	}
	res.Margin = investment.Return - res.Benchmark.Return
	return res, nil
}
