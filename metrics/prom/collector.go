package prom

import (
	"strconv"
	"time"

	"github.com/hupe1980/hvgo"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hvgo"

// Collector implements hvgo.MetricsCollector on top of Prometheus vectors.
type Collector struct {
	frontLatency *prometheus.HistogramVec
	frontPoints  prometheus.Histogram
	fronts       *prometheus.CounterVec
	batchLatency *prometheus.HistogramVec
	batchFronts  prometheus.Counter
}

var _ hvgo.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metric vectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		frontLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "front_duration_seconds",
			Help:      "Time spent on a single front",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"objectives", "status"}),
		frontPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "front_points",
			Help:      "Number of points per front",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}),
		fronts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fronts_total",
			Help:      "Total fronts processed",
		}, []string{"status"}),
		batchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Time spent on a batch",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		batchFronts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_fronts_total",
			Help:      "Total fronts requested across batches",
		}),
	}

	reg.MustRegister(c.frontLatency, c.frontPoints, c.fronts, c.batchLatency, c.batchFronts)
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordFront implements hvgo.MetricsCollector.
func (c *Collector) RecordFront(points, objectives int, duration time.Duration, err error) {
	s := status(err)
	c.frontLatency.WithLabelValues(strconv.Itoa(objectives), s).Observe(duration.Seconds())
	c.frontPoints.Observe(float64(points))
	c.fronts.WithLabelValues(s).Inc()
}

// RecordBatch implements hvgo.MetricsCollector.
func (c *Collector) RecordBatch(fronts int, duration time.Duration, err error) {
	c.batchLatency.WithLabelValues(status(err)).Observe(duration.Seconds())
	c.batchFronts.Add(float64(fronts))
}
