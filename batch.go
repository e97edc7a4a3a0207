package ntree

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// NearestBatch runs Nearest for every point concurrently and returns the
// results in input order.
//
// Workers and start rate are bounded by WithQueryLimits. The first failing
// query cancels the rest and its error is returned. The index must not be
// mutated while the batch runs.
func (idx *Index[K]) NearestBatch(ctx context.Context, points [][]float64, k int) ([][]K, error) {
	return runBatch(ctx, idx, "nearest", points, func(p []float64) ([]K, error) {
		neighbors, err := idx.knn(p, k)
		if err != nil {
			return nil, err
		}
		out := make([]K, len(neighbors))
		for i, n := range neighbors {
			out[i] = n.Payload
		}
		return out, nil
	})
}

// InRadiusBatch runs InRadius for every point concurrently and returns the
// results in input order. It follows the same rules as NearestBatch.
func (idx *Index[K]) InRadiusBatch(ctx context.Context, points [][]float64, radius float64) ([][]K, error) {
	return runBatch(ctx, idx, "in_radius", points, func(p []float64) ([]K, error) {
		return idx.inRadius(p, radius)
	})
}

func runBatch[K comparable](ctx context.Context, idx *Index[K], op string, points [][]float64, query func([]float64) ([]K, error)) ([][]K, error) {
	start := time.Now()
	results, err := fanOut(ctx, idx, points, query)
	idx.metrics.RecordBatch(len(points), time.Since(start), err)
	idx.logger.LogBatch(op, len(points), err)
	return results, err
}

func fanOut[K comparable](ctx context.Context, idx *Index[K], points [][]float64, query func([]float64) ([]K, error)) ([][]K, error) {
	results := make([][]K, len(points))

	// gctx is canceled once Wait returns, so only the caller's ctx is
	// checked afterwards.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(idx.queries.Workers()))

	for i, p := range points {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := idx.queries.Acquire(gctx); err != nil {
				return err
			}
			defer idx.queries.Release()

			found, err := query(p)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
