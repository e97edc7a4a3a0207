// Package promcollector exports index metrics and tree events to Prometheus.
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/ntree"
	"github.com/hupe1980/ntree/geom"
)

var (
	_ ntree.MetricsCollector = (*Collector)(nil)
	_ ntree.Hook             = (*Collector)(nil)
)

// Collector implements ntree.MetricsCollector and ntree.Hook.
//
//	c := promcollector.New(prometheus.DefaultRegisterer, "ntree")
//	idx, err := ntree.New[string](2, lo, hi,
//		ntree.WithMetricsCollector(c),
//		ntree.WithHook(c),
//	)
type Collector struct {
	opLatency     *prometheus.HistogramVec
	radiusResults prometheus.Histogram
	batchQueries  prometheus.Counter
	structural    *prometheus.CounterVec
	nodeEvents    *prometheus.CounterVec
}

// New creates a Collector whose metric names start with namespace and
// registers it with reg. It panics if registration fails.
func New(reg prometheus.Registerer, namespace string) *Collector {
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of index operations",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op", "status"}),
		radiusResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "radius_results",
			Help:      "Payloads returned per radius search",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		batchQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_queries_total",
			Help:      "Queries carried by batch calls",
		}),
		structural: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_restructures_total",
			Help:      "Leaf splits and internal node collapses",
		}, []string{"kind"}),
		nodeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_nodes_total",
			Help:      "Nodes visited or pruned by searches",
		}, []string{"event"}),
	}

	reg.MustRegister(c.opLatency, c.radiusResults, c.batchQueries, c.structural, c.nodeEvents)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *Collector) observe(op string, d time.Duration, err error) {
	c.opLatency.WithLabelValues(op, status(err)).Observe(d.Seconds())
}

func (c *Collector) RecordAdd(d time.Duration, err error)    { c.observe("add", d, err) }
func (c *Collector) RecordRemove(d time.Duration, err error) { c.observe("remove", d, err) }
func (c *Collector) RecordMove(d time.Duration, err error)   { c.observe("move", d, err) }

func (c *Collector) RecordSearch(_ int, d time.Duration, err error) {
	c.observe("nearest", d, err)
}

func (c *Collector) RecordRadiusSearch(found int, d time.Duration, err error) {
	c.observe("in_radius", d, err)
	if err == nil {
		c.radiusResults.Observe(float64(found))
	}
}

func (c *Collector) RecordBatch(queries int, d time.Duration, err error) {
	c.observe("batch", d, err)
	c.batchQueries.Add(float64(queries))
}

func (c *Collector) OnSplit(geom.Region, int, int)    { c.structural.WithLabelValues("split").Inc() }
func (c *Collector) OnCollapse(geom.Region, int, int) { c.structural.WithLabelValues("collapse").Inc() }
func (c *Collector) OnVisit(geom.Region, int)         { c.nodeEvents.WithLabelValues("visit").Inc() }
func (c *Collector) OnPrune(geom.Region, int)         { c.nodeEvents.WithLabelValues("prune").Inc() }
