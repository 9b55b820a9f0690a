package hvgo

import (
	"log/slog"

	"github.com/hupe1980/hvgo/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	maxRectangles    int
	initialRects     int
}

// Option configures an Engine.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring batches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hvgo.BasicMetricsCollector{}
//	eng := hvgo.New(hvgo.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fronts: %d, Avg latency: %dns\n", stats.FrontCount, stats.FrontAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for batches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hvgo.NewJSONLogger(slog.LevelDebug)
//	eng := hvgo.New(hvgo.WithLogger(logger))
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

// WithResourceController makes every batch reserve its scratch memory
// through rc. A batch whose reservation is refused fails with ErrAllocation.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMaxRectangles bounds the number of rectangles a single front may
// produce in decomposition mode. Exceeding it fails with ErrCapacity.
// Zero means unbounded.
func WithMaxRectangles(n int) Option {
	return func(o *options) {
		o.maxRectangles = n
	}
}

// WithInitialRectangles sets the initial capacity of the shared
// rectangle buffer. It grows by doubling.
func WithInitialRectangles(n int) Option {
	return func(o *options) {
		o.initialRects = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		initialRects:     64,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
