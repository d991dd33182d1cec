package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// ElemsToBytes returns count*elemSize as an int, failing on negative input
// or if the product does not fit in an int.
func ElemsToBytes(count, elemSize int) (int, error) {
	c, err := IntToUint64(count)
	if err != nil {
		return 0, err
	}
	s, err := IntToUint64(elemSize)
	if err != nil {
		return 0, err
	}
	hi, lo := bits.Mul64(c, s)
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes", count, elemSize)
	}
	return Uint64ToInt(lo)
}
