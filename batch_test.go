package ntree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ntree/resource"
	"github.com/hupe1980/ntree/testutil"
)

func TestNearestBatch(t *testing.T) {
	mc := &BasicMetricsCollector{}
	idx, err := New[int](2, []float64{0, 0}, []float64{1, 1},
		WithCapacity(4),
		WithMetricsCollector(mc),
		WithQueryLimits(resource.Config{MaxQueryWorkers: 3}),
	)
	require.NoError(t, err)

	rng := testutil.NewRNG(3)
	for i, p := range rng.UniformPoints(300, 2) {
		require.NoError(t, idx.Add(p, i))
	}

	queries := rng.UniformPoints(50, 2)
	got, err := idx.NearestBatch(context.Background(), queries, 5)
	require.NoError(t, err)
	require.Len(t, got, len(queries))

	for i, q := range queries {
		want, err := idx.Nearest(q, 5)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "query %d", i)
	}

	st := mc.GetStats()
	assert.Equal(t, int64(1), st.BatchCount)
	assert.Equal(t, int64(len(queries)), st.BatchQueries)
	assert.Equal(t, int64(0), st.BatchErrors)
}

func TestInRadiusBatch(t *testing.T) {
	idx := fivePoints(t)

	got, err := idx.InRadiusBatch(context.Background(), [][]float64{
		{0.5, 0.5},
		{0.3, 0.3},
		{0.0, 0.9},
	}, 0.3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, got[0])
	assert.Equal(t, []string{"C"}, got[1])
	assert.Empty(t, got[2])
}

func TestBatchErrors(t *testing.T) {
	t.Run("FirstQueryErrorWins", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		idx := fivePoints(t, WithMetricsCollector(mc))

		_, err := idx.NearestBatch(context.Background(), [][]float64{{0.5, 0.5}, {0.5}}, 1)
		var target *ErrDimensionMismatch
		require.ErrorAs(t, err, &target)
		assert.Equal(t, int64(1), mc.GetStats().BatchErrors)
	})

	t.Run("InvalidArguments", func(t *testing.T) {
		idx := fivePoints(t)

		_, err := idx.NearestBatch(context.Background(), [][]float64{{0.5, 0.5}}, 0)
		assert.ErrorIs(t, err, ErrInvalidK)

		_, err = idx.InRadiusBatch(context.Background(), [][]float64{{0.5, 0.5}}, -1)
		assert.ErrorIs(t, err, ErrInvalidRadius)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		idx := fivePoints(t)
		queries := [][]float64{{0.31, 0.31}, {0.5, 0.5}}
		ctx, cancel := context.WithCancel(context.Background())

		got, err := idx.NearestBatch(ctx, queries, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"C"}, got[0])

		found, err := idx.InRadiusBatch(ctx, queries, 0.3)
		require.NoError(t, err)
		require.Len(t, found, 2)
		require.NoError(t, ctx.Err())

		cancel()

		_, err = idx.NearestBatch(ctx, queries, 1)
		assert.ErrorIs(t, err, context.Canceled)
		_, err = idx.InRadiusBatch(ctx, queries, 0.3)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBatchEmpty(t *testing.T) {
	idx := fivePoints(t)

	got, err := idx.NearestBatch(context.Background(), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBatchRateLimited(t *testing.T) {
	idx := fivePoints(t, WithQueryLimits(resource.Config{
		MaxQueryWorkers:  2,
		QueriesPerSecond: 1000,
		Burst:            4,
	}))

	queries := make([][]float64, 20)
	for i := range queries {
		queries[i] = []float64{0.31, 0.31}
	}
	got, err := idx.NearestBatch(context.Background(), queries, 1)
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, []string{"C"}, r)
	}
}
