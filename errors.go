package hello

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hello/distance"
)

var (
	// ErrBufferUnavailable is returned when the demonstration buffer cannot be acquired.
	ErrBufferUnavailable = errors.New("buffer unavailable")

	// ErrInvalidBufferLen is returned when the configured buffer length is not positive.
	ErrInvalidBufferLen = errors.New("buffer length must be positive")

	// ErrInvalidFactorialCount is returned when the factorial range is negative.
	ErrInvalidFactorialCount = errors.New("factorial count must not be negative")
)

// ErrUnsupportedMetric indicates a metric with no distance implementation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnsupportedMetric struct {
	Metric distance.Metric
	cause  error
}

func (e *ErrUnsupportedMetric) Error() string {
	return fmt.Sprintf("unsupported metric: %v", e.Metric)
}

func (e *ErrUnsupportedMetric) Unwrap() error { return e.cause }
