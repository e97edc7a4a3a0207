package promcollector

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ntree"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := New(reg, "ntree")

	idx, err := ntree.New[string](2, []float64{0, 0}, []float64{1, 1},
		ntree.WithCapacity(1),
		ntree.WithMetricsCollector(c),
		ntree.WithHook(c),
	)
	require.NoError(t, err)

	require.NoError(t, idx.Add([]float64{0.1, 0.1}, "a"))
	require.NoError(t, idx.Add([]float64{0.9, 0.9}, "b"))
	require.Error(t, idx.Add([]float64{1, 1}, "c"))
	require.NoError(t, idx.Remove("b"))

	found, err := idx.InRadius([]float64{0.1, 0.1}, 0.1)
	require.NoError(t, err)
	require.Len(t, found, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.structural.WithLabelValues("split")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.structural.WithLabelValues("collapse")))
	assert.Equal(t, 4, testutil.CollectAndCount(c.opLatency))

	expected := `
# HELP ntree_radius_results Payloads returned per radius search
# TYPE ntree_radius_results histogram
ntree_radius_results_bucket{le="1"} 1
ntree_radius_results_bucket{le="2"} 1
ntree_radius_results_bucket{le="4"} 1
ntree_radius_results_bucket{le="8"} 1
ntree_radius_results_bucket{le="16"} 1
ntree_radius_results_bucket{le="32"} 1
ntree_radius_results_bucket{le="64"} 1
ntree_radius_results_bucket{le="128"} 1
ntree_radius_results_bucket{le="256"} 1
ntree_radius_results_bucket{le="512"} 1
ntree_radius_results_bucket{le="1024"} 1
ntree_radius_results_bucket{le="2048"} 1
ntree_radius_results_bucket{le="+Inf"} 1
ntree_radius_results_sum 1
ntree_radius_results_count 1
`
	assert.NoError(t, testutil.CollectAndCompare(c.radiusResults, strings.NewReader(expected)))
}

func TestCollectorSearchEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, "ntree")

	idx, err := ntree.New[int](1, []float64{0}, []float64{1},
		ntree.WithCapacity(1),
		ntree.WithHook(c),
	)
	require.NoError(t, err)
	require.NoError(t, idx.Add([]float64{0.1}, 1))
	require.NoError(t, idx.Add([]float64{0.9}, 2))

	got, err := idx.Nearest([]float64{0.05}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.nodeEvents.WithLabelValues("visit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.nodeEvents.WithLabelValues("prune")))
	assert.Equal(t, 0, testutil.CollectAndCount(c.opLatency))
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, "ntree")
	assert.Panics(t, func() { New(reg, "ntree") })
}
