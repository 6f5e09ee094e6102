package re2post

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Pattern string
	Postfix string
	Err     error
}

// ConvertAll converts every pattern on its own goroutine, at most workers at
// a time (workers <= 0 means no limit). Rejections land in Result.Err; the
// returned error is only set when ctx ends before every pattern was scheduled.
func ConvertAll(ctx context.Context, c *Converter, patterns []string, workers int) ([]Result, error) {
	results := make([]Result, len(patterns))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}
		i, pattern := i, pattern
		g.Go(func() error {
			postfix, err := c.Convert(pattern)
			results[i] = Result{Pattern: pattern, Postfix: postfix, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
