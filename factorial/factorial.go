package factorial

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// MaxExact is the largest n whose factorial fits in a uint64.
const MaxExact = 20

// ErrOverflow is matched by every *OverflowError.
var ErrOverflow = errors.New("factorial: uint64 overflow")

// OverflowError reports the argument whose factorial does not fit in 64 bits.
type OverflowError struct {
	N uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("factorial: %d! overflows uint64", e.N)
}

func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// Of returns n! in uint64 arithmetic, wrapping silently on overflow.
func Of(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return n * Of(n-1)
}

// Checked returns n!, or an *OverflowError if it exceeds math.MaxUint64.
func Checked(n uint64) (uint64, error) {
	if n == 0 {
		return 1, nil
	}
	prev, err := Checked(n - 1)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(n, prev)
	if hi != 0 {
		return 0, &OverflowError{N: n}
	}
	return lo, nil
}

// Big returns the exact value of n!.
func Big(n uint64) *big.Int {
	return new(big.Int).MulRange(1, int64(n)) //nolint:gosec // callers stay far below MaxInt64
}

// Wrapped returns Big(n) reduced modulo 2^64, the value Of(n) produces.
func Wrapped(n uint64) uint64 {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	return new(big.Int).Mod(Big(n), mod).Uint64()
}
