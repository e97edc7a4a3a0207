package ntree

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/ntree/resource"
)

func TestApplyOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		o := applyOptions(nil)
		assert.Equal(t, DefaultCapacity, o.capacity)
		assert.Equal(t, DefaultMaxDepth, o.maxDepth)
		assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.IsType(t, NoopHook{}, o.hook)
		assert.NotNil(t, o.logger)
	})

	t.Run("NilsFallBackToNoop", func(t *testing.T) {
		o := applyOptions([]Option{
			nil,
			WithMetricsCollector(nil),
			WithLogger(nil),
			WithHook(nil),
		})
		assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
		assert.IsType(t, NoopHook{}, o.hook)
		assert.False(t, o.logger.Enabled(t.Context(), slog.LevelError))
	})

	t.Run("Overrides", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		limits := resource.Config{MaxQueryWorkers: 2, QueriesPerSecond: 10}
		o := applyOptions([]Option{
			WithCapacity(5),
			WithMaxDepth(7),
			WithMetricsCollector(mc),
			WithLogLevel(slog.LevelWarn),
			WithQueryLimits(limits),
		})
		assert.Equal(t, 5, o.capacity)
		assert.Equal(t, 7, o.maxDepth)
		assert.Same(t, mc, o.metricsCollector)
		assert.Equal(t, limits, o.queryLimits)
		assert.True(t, o.logger.Enabled(t.Context(), slog.LevelWarn))
		assert.False(t, o.logger.Enabled(t.Context(), slog.LevelInfo))
	})
}
