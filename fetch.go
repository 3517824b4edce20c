package stocksim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// lookupLimit caps in-flight provider lookups.
const lookupLimit = 4

// simulateAll runs one simulation per request, fetching concurrently.
// Results and errors are collected by input index, so reducing them yields
// the same outcome as a sequential run.
func (s *Simulator) simulateAll(ctx context.Context, reqs []Request) ([]*Result, []error) {
	results := make([]*Result, len(reqs))
	errs := make([]error, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupLimit)
	for i, req := range reqs {
		g.Go(func() error {
			results[i], errs[i] = s.Simulate(ctx, req)
			return nil // per-request errors are reduced by the caller
		})
	}
	g.Wait()
	return results, errs
}
