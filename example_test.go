package hello_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/hello"
	"github.com/hupe1980/hello/distance"
)

// Example_bufferUnavailable shows the report stopping when the buffer does not
// fit under the memory limit.
func Example_bufferUnavailable() {
	err := hello.Run(context.Background(), os.Stdout,
		hello.WithMetric(distance.MetricChebyshev),
		hello.WithMemoryLimit(1024),
	)
	fmt.Println(errors.Is(err, hello.ErrBufferUnavailable))
	// Output:
	// distance is 32.330002
	// cond = false
	//
	// true
}

// Example_metrics demonstrates collecting metrics from a run.
func Example_metrics() {
	metrics := &hello.BasicMetricsCollector{}

	if err := hello.Run(context.Background(), io.Discard, hello.WithMetricsCollector(metrics)); err != nil {
		fmt.Println(err)
		return
	}

	stats := metrics.GetStats()
	fmt.Printf("acquired %d bytes, released %d time(s), %d factorials\n",
		stats.AcquiredBytes, stats.ReleaseCount, stats.FactorialCount)
	// Output: acquired 256000 bytes, released 1 time(s), 10 factorials
}
