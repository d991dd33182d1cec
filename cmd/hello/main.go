// Command hello prints the fixed-width integer demonstration report.
//
// Usage:
//
//	hello [-metric L2] [-buffer-len 64000] [-memory-limit 0] [-log-level warn] [-log-json]
//
// The exit status is 1 if the buffer cannot be acquired.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/hello"
	"github.com/hupe1980/hello/distance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hello", flag.ContinueOnError)
	fs.SetOutput(stderr)

	metricName := fs.String("metric", distance.MetricL2.String(), "distance metric (L2, SquaredL2, Manhattan, Chebyshev)")
	bufferLen := fs.Int("buffer-len", hello.DefaultBufferLen, "number of uint32 values in the buffer")
	memoryLimit := fs.Int64("memory-limit", 0, "buffer memory limit in bytes (0 = unlimited)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	logJSON := fs.Bool("log-json", false, "emit JSON logs")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "invalid -log-level: %v\n", err)
		return 2
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(stderr, opts)
	if *logJSON {
		handler = slog.NewJSONHandler(stderr, opts)
	}
	logger := hello.NewLogger(handler)

	metric, err := distance.ParseMetric(*metricName)
	if err != nil {
		logger.Error("invalid flag", "flag", "metric", "error", err)
		return 2
	}

	err = hello.Run(ctx, stdout,
		hello.WithMetric(metric),
		hello.WithBufferLen(*bufferLen),
		hello.WithMemoryLimit(*memoryLimit),
		hello.WithLogger(logger),
	)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, hello.ErrBufferUnavailable):
		logger.Error("error acquiring buffer, exiting", "error", err)
		return 1
	case errors.Is(err, hello.ErrInvalidBufferLen):
		logger.Error("invalid flag", "flag", "buffer-len", "error", err)
		return 2
	default:
		logger.Error("run failed", "error", err)
		return 1
	}
}
