package hello

import (
	"log/slog"

	"github.com/hupe1980/hello/distance"
	"github.com/hupe1980/hello/resource"
)

type options struct {
	distancer        distance.Distancer
	metric           distance.Metric
	bufferLen        int
	factorialCount   int
	newAllocator     func() Allocator
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Demo.
type Option func(*options)

// WithDistance binds a custom distance implementation.
// It takes precedence over WithMetric. A nil Distancer is ignored.
func WithDistance(d distance.Distancer) Option {
	return func(o *options) {
		if d != nil {
			o.distancer = d
		}
	}
}

// WithMetric selects one of the built-in distance implementations.
//
// The default is distance.MetricL2. An unsupported metric makes New fail
// with *ErrUnsupportedMetric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithBufferLen sets the number of uint32 values in the demonstration buffer.
// Defaults to DefaultBufferLen.
func WithBufferLen(n int) Option {
	return func(o *options) {
		o.bufferLen = n
	}
}

// WithFactorialCount sets how many factorials (0..n-1) are printed.
// Defaults to DefaultFactorialCount.
func WithFactorialCount(n int) Option {
	return func(o *options) {
		o.factorialCount = n
	}
}

// WithAllocator replaces the default off-heap arena.
//
// newAlloc is called once per Run; the returned Allocator is freed before
// Run returns.
func WithAllocator(newAlloc func() Allocator) Option {
	return func(o *options) {
		o.newAllocator = newAlloc
	}
}

// WithResourceController charges buffer memory to rc.
// Pass nil to disable memory accounting.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMemoryLimit limits buffer memory to limit bytes.
// Convenience wrapper for WithResourceController with a fresh controller.
func WithMemoryLimit(limit int64) Option {
	return func(o *options) {
		o.controller = resource.NewController(resource.Config{
			MemoryLimitBytes: limit,
		})
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hello.BasicMetricsCollector{}
//	_ = hello.Run(ctx, os.Stdout, hello.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().ReleaseCount) // 1
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := hello.NewJSONLogger(slog.LevelDebug)
//	demo, _ := hello.New(hello.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		metric:           distance.MetricL2,
		bufferLen:        DefaultBufferLen,
		factorialCount:   DefaultFactorialCount,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
