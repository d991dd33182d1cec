package hello

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"
	"unsafe"

	"github.com/hupe1980/hello/distance"
	"github.com/hupe1980/hello/factorial"
	"github.com/hupe1980/hello/internal/arena"
)

const (
	// DefaultBufferLen is the number of uint32 values in the demonstration buffer.
	DefaultBufferLen = 64000

	// DefaultFactorialCount is the number of factorials printed (0..9).
	DefaultFactorialCount = 10
)

var (
	// PointA is the first point handed to the distance function.
	PointA = distance.Pt(20.0, 0.37)
	// PointB is the second point handed to the distance function.
	PointB = distance.Pt(-12.33, -5.0)
)

// Allocator hands out the demonstration buffer.
//
// *arena.Arena (the default) satisfies it. Free must be safe to call after a
// failed or skipped allocation.
type Allocator interface {
	AllocUint32Slice(ctx context.Context, n int) ([]uint32, error)
	Free() error
}

// Demo runs the demonstration sequence. A Demo is not safe for concurrent use.
type Demo struct {
	distancer      distance.Distancer
	bufferLen      int
	factorialCount int
	newAllocator   func() Allocator
	metrics        MetricsCollector
	logger         *Logger
}

// New creates a Demo. The distance implementation is bound here and never
// changes afterwards.
func New(optFns ...Option) (*Demo, error) {
	o := applyOptions(optFns)

	if o.bufferLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferLen, o.bufferLen)
	}
	if o.factorialCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactorialCount, o.factorialCount)
	}

	logger := o.logger.WithBufferLen(o.bufferLen)

	d := o.distancer
	if d == nil {
		fn, err := distance.Provider(o.metric)
		if err != nil {
			return nil, &ErrUnsupportedMetric{Metric: o.metric, cause: err}
		}
		d = fn
		logger = logger.WithMetric(o.metric)
	}

	newAlloc := o.newAllocator
	if newAlloc == nil {
		var arenaOpts []arena.Option
		if o.controller != nil {
			arenaOpts = append(arenaOpts, arena.WithMemoryAcquirer(o.controller))
		}
		newAlloc = func() Allocator { return arena.New(arenaOpts...) }
	}

	return &Demo{
		distancer:      d,
		bufferLen:      o.bufferLen,
		factorialCount: o.factorialCount,
		newAllocator:   newAlloc,
		metrics:        o.metricsCollector,
		logger:         logger,
	}, nil
}

// Run is shorthand for New followed by Demo.Run.
func Run(ctx context.Context, w io.Writer, optFns ...Option) error {
	d, err := New(optFns...)
	if err != nil {
		return err
	}
	return d.Run(ctx, w)
}

// Run writes the report to w.
//
// If the buffer cannot be acquired, nothing after the "cond" line is written
// and the returned error matches ErrBufferUnavailable.
func (d *Demo) Run(ctx context.Context, w io.Writer) error {
	err := d.run(ctx, w)
	d.logger.LogRun(ctx, d.factorialCount, err)
	return err
}

func (d *Demo) run(ctx context.Context, w io.Writer) error {
	rw := &reportWriter{w: w}

	cond := false

	start := time.Now()
	dist := d.distancer.Distance(PointA, PointB)
	d.metrics.RecordDistance(time.Since(start))
	d.logger.LogDistance(ctx, PointA, PointB, dist)

	rw.printf("distance is %f\n", dist)
	rw.printf("cond = %t\n\n", cond)
	if rw.err != nil {
		return rw.err
	}

	err := d.withBuffer(ctx, func(buf []uint32) error {
		rw.printf("vector = %p\n", unsafe.SliceData(buf))
		return rw.err
	})
	if err != nil {
		return err
	}

	for i := range uint64(d.factorialCount) { //nolint:gosec // validated non-negative
		f := factorial.Of(i)
		d.metrics.RecordFactorial(i)

		rw.printf("fact(%d) = %d\n", i, f)
		rw.printf("fact(%d) = 0x%016x\n\n", i, f)
	}

	rw.printf("INT64_MIN = %d\n", int64(math.MinInt64))
	rw.printf("INT64_MAX = %d\n", int64(math.MaxInt64))

	return rw.err
}

// withBuffer acquires the demonstration buffer, hands it to fn and frees the
// allocator on every path. fn is never called if acquisition fails or yields
// fewer than bufferLen values.
func (d *Demo) withBuffer(ctx context.Context, fn func([]uint32) error) (err error) {
	alloc := d.newAllocator()
	defer func() {
		freeErr := alloc.Free()
		d.metrics.RecordBufferRelease(freeErr)
		d.logger.LogBufferRelease(ctx, d.bufferLen, freeErr)
		if err == nil {
			err = freeErr
		}
	}()

	buf, err := alloc.AllocUint32Slice(ctx, d.bufferLen)
	if err == nil && len(buf) < d.bufferLen {
		err = fmt.Errorf("allocator returned %d of %d values", len(buf), d.bufferLen)
	}
	bytes := d.bufferLen * int(unsafe.Sizeof(uint32(0)))
	d.metrics.RecordBufferAcquire(bytes, err)
	d.logger.LogBufferAcquire(ctx, d.bufferLen, err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBufferUnavailable, err)
	}

	return fn(buf)
}

// reportWriter keeps the first write error so the report code can print
// unconditionally and check once.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("write report: %w", err)
	}
}
