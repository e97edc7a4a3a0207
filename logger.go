package ntree

import (
	"log/slog"
	"os"

	"github.com/hupe1980/ntree/geom"
)

// Logger wraps slog.Logger with ntree-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(payload any, err error) {
	l.logMutation("add", payload, err)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(payload any, err error) {
	l.logMutation("remove", payload, err)
}

// LogMove logs a move operation.
func (l *Logger) LogMove(payload any, err error) {
	l.logMutation("move", payload, err)
}

func (l *Logger) logMutation(op string, payload any, err error) {
	if err != nil {
		l.Warn(op+" failed",
			"payload", payload,
			"error", err,
		)
	} else {
		l.Debug(op+" completed",
			"payload", payload,
		)
	}
}

// LogSearch logs a nearest-neighbor search.
func (l *Logger) LogSearch(k, resultsFound int, err error) {
	if err != nil {
		l.Warn("search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogRadiusSearch logs a radius search.
func (l *Logger) LogRadiusSearch(radius float64, resultsFound int, err error) {
	if err != nil {
		l.Warn("radius search failed",
			"radius", radius,
			"error", err,
		)
	} else {
		l.Debug("radius search completed",
			"radius", radius,
			"results", resultsFound,
		)
	}
}

// LogBatch logs a batch query.
func (l *Logger) LogBatch(op string, queries int, err error) {
	if err != nil {
		l.Error(op+" batch failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.Info(op+" batch completed",
			"queries", queries,
		)
	}
}

// LogHook returns a Hook that writes tree events to l at debug level.
func LogHook(l *Logger) Hook {
	return logHook{l: l}
}

type logHook struct {
	l *Logger
}

func (h logHook) OnSplit(region geom.Region, depth, count int) {
	h.l.Debug("node split", "region", region.String(), "depth", depth, "count", count)
}

func (h logHook) OnCollapse(region geom.Region, depth, count int) {
	h.l.Debug("node collapsed", "region", region.String(), "depth", depth, "count", count)
}

func (h logHook) OnVisit(region geom.Region, depth int) {
	h.l.Debug("node visited", "region", region.String(), "depth", depth)
}

func (h logHook) OnPrune(region geom.Region, depth int) {
	h.l.Debug("node pruned", "region", region.String(), "depth", depth)
}
