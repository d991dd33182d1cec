package factorial

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hello/testutil"
)

func TestOf(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{9, 362880},
		{10, 3628800},
		{15, 1307674368000},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.n))
		})
	}
}

func TestOf_ExactRange(t *testing.T) {
	for n := uint64(0); n <= MaxExact; n++ {
		assert.True(t, Big(n).IsUint64(), "n=%d", n)
		assert.Equal(t, Big(n).Uint64(), Of(n), "n=%d", n)
	}
	assert.False(t, Big(MaxExact+1).IsUint64())
}

func TestOf_Wraps(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{21, 14197454024290336768},
		{22, 17196083355034583040},
		{25, 7034535277573963776},
		{30, 9682165104862298112},
		{65, 9223372036854775808},
		{66, 0},
		{100, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.n))
			assert.Equal(t, tt.want, Wrapped(tt.n))
		})
	}
}

func TestOf_MatchesWrappedRandom(t *testing.T) {
	rng := testutil.NewRNG(7)
	for range 50 {
		n := rng.Uint64n(200)
		assert.Equal(t, Wrapped(n), Of(n), "n=%d", n)
	}
}

func TestChecked(t *testing.T) {
	for n := uint64(0); n <= MaxExact; n++ {
		got, err := Checked(n)
		require.NoError(t, err)
		assert.Equal(t, Of(n), got)
	}

	_, err := Checked(MaxExact + 1)
	require.ErrorIs(t, err, ErrOverflow)

	var oe *OverflowError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, uint64(MaxExact+1), oe.N)
	assert.Equal(t, "factorial: 21! overflows uint64", err.Error())

	// The first overflowing argument is reported, not the requested one.
	_, err = Checked(30)
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, uint64(MaxExact+1), oe.N)
}

func TestBig(t *testing.T) {
	assert.Equal(t, "1", Big(0).String())
	assert.Equal(t, "51090942171709440000", Big(21).String())
}
