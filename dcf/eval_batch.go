package dcf

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvalBatch evaluates share at every point in xs and returns one output
// per point, in the same order. It fans the batch out across up to
// runtime.GOMAXPROCS(0) goroutines; each worker only ever reads share and
// the PRG, so no locking is needed. The j-th output corresponds to the
// j-th input regardless of which worker or in what order each point
// finishes.
//
// ctx is checked between points, not mid-point: a single Eval call has no
// internal suspension points, so cancellation can only take effect at
// point granularity.
func (d *DCF) EvalBatch(ctx context.Context, party Party, share Share, xs [][]byte) ([][SeedLen]byte, error) {
	ys := make([][SeedLen]byte, len(xs))
	if len(xs) == 0 {
		return ys, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(xs) {
		workers = len(xs)
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(xs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(xs) {
			break
		}
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}
		start, end := start, end
		g.Go(func() error {
			for j := start; j < end; j++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				y, err := d.Eval(party, share, xs[j])
				if err != nil {
					return err
				}
				ys[j] = y
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ys, nil
}
