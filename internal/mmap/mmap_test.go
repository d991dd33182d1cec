package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)
	defer m.Close()

	data := m.Bytes()
	require.Len(t, data, 4096)
	assert.Equal(t, 4096, m.Size())
	assert.NotZero(t, m.Addr())

	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte at index %d not zero: %d", i, b)
		}
	}

	// Writable
	data[0] = 0xAB
	data[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])
}

func TestMapAnon_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		m, err := MapAnon(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, m)
	}
}

func TestMapping_CloseIdempotent(t *testing.T) {
	m, err := MapAnon(128)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.Nil(t, m.Bytes())
	assert.Zero(t, m.Addr())

	// Second close is a no-op
	assert.NoError(t, m.Close())
}
