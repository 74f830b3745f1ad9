package viterbi

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hmmtag/hmm"
)

// DecodeAll decodes every sentence independently on at most workers
// goroutines (workers <= 0 means GOMAXPROCS) and returns the results in
// input order.
//
// The model is only read, so no locking is involved. The first failing
// sentence cancels the remaining work; its error is returned wrapped with
// the sentence index.
//
// Complexity: Σ O(T·N²) spread over the workers.
func DecodeAll(ctx context.Context, sentences [][]hmm.Word, m *hmm.Model, opts *Options, workers int) ([]Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if _, err := resolve(opts); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(sentences))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, obs := range sentences {
		i, obs := i, obs
		g.Go(func() error {
			r, err := DecodeContext(gctx, obs, m, opts)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", i, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
