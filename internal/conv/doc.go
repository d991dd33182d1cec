// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned integer types or turning element
// counts into byte sizes for the allocator.
package conv
