// Package testutil provides testing utilities for hello.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random generator for points and factorial arguments.
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Point(100)    // coordinates uniform in [-100, 100)
//	n := rng.Uint64n(21)   // uniform in [0, 21)
package testutil
