package jsoncompare

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pair is one comparison to be run by CompareAll.
type Pair struct {
	Expected string
	Actual   string
}

// CompareAll runs independent comparisons concurrently and returns their verdicts in the same order as
// the pairs. At most concurrency comparisons run at once; zero or less means runtime.GOMAXPROCS(0).
//
// If the context is cancelled before all comparisons have been started, CompareAll returns the context's
// error and no verdicts.
func CompareAll(ctx context.Context, pairs []Pair, concurrency int, options Options) ([]Verdict, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	verdicts := make([]Verdict, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range pairs {
		if err := gctx.Err(); err != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = CompareWithOptions(p.Expected, p.Actual, options)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
