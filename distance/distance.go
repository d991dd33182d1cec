package distance

import (
	"fmt"
	"math"
	"strings"
)

// Point is a 2D coordinate pair.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distancer computes a scalar distance between two points.
type Distancer interface {
	Distance(a, b Point) float32
}

// Func is a function type for distance calculation.
type Func func(a, b Point) float32

// Distance implements Distancer.
func (f Func) Distance(a, b Point) float32 {
	return f(a, b)
}

// L2 calculates the Euclidean distance between two points.
func L2(a, b Point) float32 {
	return float32(math.Sqrt(float64(SquaredL2(a, b))))
}

// SquaredL2 calculates the squared Euclidean distance between two points.
func SquaredL2(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Manhattan calculates the L1 distance between two points.
func Manhattan(a, b Point) float32 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev calculates the L-infinity distance between two points.
func Chebyshev(a, b Point) float32 {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric returns the metric named by s (case-insensitive).
func ParseMetric(s string) (Metric, error) {
	for _, m := range []Metric{MetricL2, MetricSquaredL2, MetricManhattan, MetricChebyshev} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
