// Package resource bounds the work batch queries may put on a process.
package resource

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxQueryWorkers is the maximum number of queries running at once across
	// all batch calls sharing the controller.
	// If 0, defaults to GOMAXPROCS.
	MaxQueryWorkers int64

	// QueriesPerSecond caps the rate at which batch queries start.
	// If 0, unlimited.
	QueriesPerSecond float64

	// Burst is the number of queries that may start at once when a rate is
	// configured. If 0, defaults to 1.
	Burst int
}

// Controller admits batch queries.
type Controller struct {
	cfg Config

	// Concurrency
	workers *semaphore.Weighted

	// Rate
	limiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxQueryWorkers <= 0 {
		cfg.MaxQueryWorkers = int64(runtime.GOMAXPROCS(0))
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxQueryWorkers),
	}

	if cfg.QueriesPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.QueriesPerSecond), cfg.Burst)
	}

	return c
}

// Workers returns the configured worker limit.
func (c *Controller) Workers() int64 {
	return c.cfg.MaxQueryWorkers
}

// Acquire reserves a worker slot and waits for the rate limit.
// Blocks until both allow the query or ctx is canceled.
func (c *Controller) Acquire(ctx context.Context) error {
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.workers.Release(1)
			return err
		}
	}
	return nil
}

// Release frees a worker slot reserved by Acquire.
func (c *Controller) Release() {
	c.workers.Release(1)
}
