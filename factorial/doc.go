// Package factorial computes n! over fixed-width unsigned integers.
//
// Of is the plain recursive definition in uint64 arithmetic. It never checks
// for overflow: past MaxExact the product wraps modulo 2^64, exactly as Go's
// unsigned multiplication is defined to. From n = 66 on every result is 0,
// since the product then contains at least 64 factors of two.
//
//	factorial.Of(20) // 2432902008176640000
//	factorial.Of(21) // 14197454024290336768 (51090942171709440000 mod 2^64)
//
// Checked is the stricter variant that reports overflow instead of wrapping,
// and Big returns the exact value at arbitrary precision.
package factorial
