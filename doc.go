// Package hello is a small demonstration of fixed-width integer types in Go.
//
// It binds a distance function over 2D points once at startup, computes
// factorials in uint64 arithmetic, and acquires a zeroed buffer of uint32
// values off the Go heap with a guaranteed release. Run prints a report of
// all three to an io.Writer.
//
// # Quick Start
//
//	if err := hello.Run(ctx, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// The report looks like this (the buffer address varies):
//
//	distance is 32.772945
//	cond = false
//
//	vector = 0x7f3a1c000000
//	fact(0) = 1
//	fact(0) = 0x0000000000000001
//
//	...
//	fact(9) = 362880
//	fact(9) = 0x0000000000058980
//
//	INT64_MIN = -9223372036854775808
//	INT64_MAX = 9223372036854775807
//
// # Configuration
//
// Behaviour is configured with functional options:
//
//	demo, err := hello.New(
//	    hello.WithMetric(distance.MetricManhattan),
//	    hello.WithMemoryLimit(1<<20),
//	    hello.WithLogger(hello.NewTextLogger(slog.LevelDebug)),
//	)
//
// # Buffer Failure
//
// Acquiring the buffer is the only step that can fail. When the memory limit
// (or a custom Allocator) refuses it, Run stops right after the "cond" line,
// releases whatever was reserved and returns an error matching
// ErrBufferUnavailable. The cmd/hello binary turns that into exit status 1.
//
// # Factorial Overflow
//
// The factorial column is computed with factorial.Of, which wraps modulo 2^64
// without any check. The default range 0..9 is far from the limit; larger
// ranges set with WithFactorialCount print the wrapped values.
package hello
