package arena

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcquirer struct {
	mu       sync.Mutex
	limit    int64
	used     int64
	acquires int
	releases int
}

func (f *fakeAcquirer) AcquireMemory(_ context.Context, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.limit > 0 && f.used+amount > f.limit {
		return errors.New("limit exceeded")
	}
	f.used += amount
	f.acquires++
	return nil
}

func (f *fakeAcquirer) ReleaseMemory(amount int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.used -= amount
	f.releases++
}

func TestArena_AllocUint32Slice(t *testing.T) {
	t.Run("zeroed", func(t *testing.T) {
		a := New()
		defer a.Free()

		s, err := a.AllocUint32Slice(t.Context(), 64000)
		require.NoError(t, err)
		require.Len(t, s, 64000)
		assert.Equal(t, 64000, cap(s))

		for i, v := range s {
			if v != 0 {
				t.Fatalf("value at index %d not zero: %d", i, v)
			}
		}

		s[0] = 1
		s[63999] = 0xFFFFFFFF
		assert.Equal(t, uint32(0xFFFFFFFF), s[63999])
	})

	t.Run("zero length", func(t *testing.T) {
		a := New()
		defer a.Free()

		s, err := a.AllocUint32Slice(t.Context(), 0)
		require.NoError(t, err)
		assert.Nil(t, s)
		assert.Equal(t, uint64(0), a.Stats().TotalAllocs)
	})

	t.Run("overflowing length", func(t *testing.T) {
		a := New()
		defer a.Free()

		_, err := a.AllocUint32Slice(t.Context(), int(^uint(0)>>1))
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})
}

func TestArena_Stats(t *testing.T) {
	a := New()

	_, err := a.AllocUint32Slice(t.Context(), 16)
	require.NoError(t, err)
	_, err = a.AllocBytes(t.Context(), 100)
	require.NoError(t, err)

	stats := a.Stats()
	assert.Equal(t, uint64(164), stats.BytesReserved)
	assert.Equal(t, uint64(2), stats.TotalAllocs)
	assert.Equal(t, uint64(2), stats.ActiveMappings)
	assert.Contains(t, a.String(), "mappings: 2")

	require.NoError(t, a.Free())

	stats = a.Stats()
	assert.Equal(t, uint64(0), stats.BytesReserved)
	assert.Equal(t, uint64(2), stats.MappingsReleased)
	assert.Equal(t, uint64(0), stats.ActiveMappings)
}

func TestArena_FreeIdempotent(t *testing.T) {
	acq := &fakeAcquirer{}
	a := New(WithMemoryAcquirer(acq))

	_, err := a.AllocUint32Slice(t.Context(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(40), acq.used)

	require.NoError(t, a.Free())
	require.NoError(t, a.Free())

	assert.True(t, a.Closed())
	assert.Equal(t, int64(0), acq.used)
	assert.Equal(t, 1, acq.releases)
	assert.Equal(t, uint64(1), a.Stats().MappingsReleased)

	_, err = a.AllocUint32Slice(t.Context(), 10)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestArena_MemoryAcquirerRefuses(t *testing.T) {
	acq := &fakeAcquirer{limit: 1024}
	a := New(WithMemoryAcquirer(acq))
	defer a.Free()

	s, err := a.AllocUint32Slice(t.Context(), 64000)
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.Nil(t, s)
	assert.Equal(t, 0, acq.acquires)
	assert.Equal(t, uint64(0), a.Stats().MappingsCreated)

	// Fits under the limit
	s, err = a.AllocUint32Slice(t.Context(), 256)
	require.NoError(t, err)
	assert.Len(t, s, 256)
}

type blockingAcquirer struct{}

func (blockingAcquirer) AcquireMemory(ctx context.Context, _ int64) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingAcquirer) ReleaseMemory(int64) {}

func TestArena_AcquireTimeout(t *testing.T) {
	a := New(WithMemoryAcquirer(blockingAcquirer{}), WithAcquireTimeout(10*time.Millisecond))
	defer a.Free()

	start := time.Now()
	_, err := a.AllocBytes(context.Background(), 64)
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
