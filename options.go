package ntree

import (
	"log/slog"

	"github.com/hupe1980/ntree/resource"
)

const (
	// DefaultCapacity is the number of entries a leaf holds before it splits.
	DefaultCapacity = 16

	// DefaultMaxDepth is the depth at which leaves stop splitting.
	DefaultMaxDepth = 32

	// MaxDepthLimit is the largest accepted max depth. It bounds the
	// recursion a cluster of identical points can cause.
	MaxDepthLimit = 64
)

type options struct {
	capacity         int
	maxDepth         int
	metricsCollector MetricsCollector
	logger           *Logger
	hook             Hook
	queryLimits      resource.Config
}

// Option configures the Index constructor.
type Option func(*options)

// WithCapacity sets the number of entries a leaf holds before it splits into
// 2^D children. Defaults to DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithMaxDepth bounds how deep the tree may subdivide. Leaves at this depth
// no longer split and hold every entry routed to them, which keeps clusters of
// identical points from recursing without end. Defaults to DefaultMaxDepth;
// New rejects depths above MaxDepthLimit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ntree.BasicMetricsCollector{}
//	idx, _ := ntree.New[string](2, min, max, ntree.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Avg latency: %dns\n", stats.AddCount, stats.AddAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := ntree.NewJSONLogger(slog.LevelDebug)
//	idx, _ := ntree.New[string](2, min, max, ntree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithHook receives the split, collapse, visit and prune events of the
// tree. Pass nil to disable.
//
// To trace searches through the logger:
//
//	logger := ntree.NewTextLogger(slog.LevelDebug)
//	idx, _ := ntree.New[string](2, min, max, ntree.WithHook(ntree.LogHook(logger)))
func WithHook(hook Hook) Option {
	return func(o *options) {
		if hook == nil {
			hook = NoopHook{}
		}
		o.hook = hook
	}
}

// WithQueryLimits bounds the worker count and start rate of batch queries.
func WithQueryLimits(cfg resource.Config) Option {
	return func(o *options) {
		o.queryLimits = cfg
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		capacity:         DefaultCapacity,
		maxDepth:         DefaultMaxDepth,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		hook:             NoopHook{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
