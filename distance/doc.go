// Package distance provides 2D points and the distance functions over them.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (default)
//   - MetricSquaredL2: Squared Euclidean distance
//   - MetricManhattan: Sum of absolute coordinate differences
//   - MetricChebyshev: Largest absolute coordinate difference
//
// # Usage
//
//	fn, _ := distance.Provider(distance.MetricL2)
//	d := fn(distance.Pt(20, 0.37), distance.Pt(-12.33, -5))
//
// A Func satisfies the Distancer interface, so a metric can be bound once and
// handed to code that only needs "distance between two points".
package distance
