package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/hello/internal/conv"
	"github.com/hupe1980/hello/internal/mmap"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrAllocationFailed is returned when an allocation fails.
	ErrAllocationFailed = errors.New("arena: allocation failed")
	// ErrClosed is returned when allocating from an arena after Free.
	ErrClosed = errors.New("arena: closed")
)

// DefaultAcquireTimeout bounds how long an allocation waits on the
// MemoryAcquirer when the caller's context carries no deadline.
const DefaultAcquireTimeout = 100 * time.Millisecond

// Stats tracks arena memory usage metrics.
//
//   - BytesReserved: bytes currently mapped
//   - TotalAllocs: cumulative allocation count
//   - MappingsCreated: cumulative mappings created
//   - MappingsReleased: cumulative mappings unmapped by Free
//   - ActiveMappings: mappings currently held
type Stats struct {
	BytesReserved    uint64
	TotalAllocs      uint64
	MappingsCreated  uint64
	MappingsReleased uint64
	ActiveMappings   uint64
}

type atomicStats struct {
	BytesReserved    atomic.Uint64
	TotalAllocs      atomic.Uint64
	MappingsCreated  atomic.Uint64
	MappingsReleased atomic.Uint64
}

// Arena is an off-heap memory arena.
type Arena struct {
	mu             sync.Mutex
	mappings       []*mmap.Mapping
	closed         bool
	stats          atomicStats
	acquirer       MemoryAcquirer
	acquireTimeout time.Duration
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithMemoryAcquirer sets the memory acquirer for the arena.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// WithAcquireTimeout overrides DefaultAcquireTimeout.
func WithAcquireTimeout(d time.Duration) Option {
	return func(a *Arena) {
		if d > 0 {
			a.acquireTimeout = d
		}
	}
}

// New creates a new, empty Arena.
func New(opts ...Option) *Arena {
	a := &Arena{
		acquireTimeout: DefaultAcquireTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AllocBytes allocates a zeroed byte slice of the given size.
// A non-positive size returns a nil slice and no error.
func (a *Arena) AllocBytes(ctx context.Context, size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, ErrClosed
	}

	if a.acquirer != nil {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.acquireTimeout)
			defer cancel()
		}
		if err := a.acquirer.AcquireMemory(ctx, int64(size)); err != nil {
			return nil, fmt.Errorf("%w: reserve %d bytes: %w", ErrAllocationFailed, size, err)
		}
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		if a.acquirer != nil {
			a.acquirer.ReleaseMemory(int64(size))
		}
		return nil, fmt.Errorf("%w: map %d bytes: %w", ErrAllocationFailed, size, err)
	}

	a.mappings = append(a.mappings, mapping)

	sizeU64, _ := conv.IntToUint64(size) // size > 0
	a.stats.BytesReserved.Add(sizeU64)
	a.stats.MappingsCreated.Add(1)
	a.stats.TotalAllocs.Add(1)

	return mapping.Bytes()[:size:size], nil
}

// AllocUint32Slice allocates a zeroed uint32 slice of length n.
// A non-positive n returns a nil slice and no error.
func (a *Arena) AllocUint32Slice(ctx context.Context, n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}

	size, err := conv.ElemsToBytes(n, int(unsafe.Sizeof(uint32(0))))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	bytes, err := a.AllocBytes(ctx, size)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*uint32)(unsafe.Pointer(&bytes[0])), n), nil //nolint:gosec // mappings are page aligned
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	created := a.stats.MappingsCreated.Load()
	released := a.stats.MappingsReleased.Load()
	return Stats{
		BytesReserved:    a.stats.BytesReserved.Load(),
		TotalAllocs:      a.stats.TotalAllocs.Load(),
		MappingsCreated:  created,
		MappingsReleased: released,
		ActiveMappings:   created - released,
	}
}

// Free unmaps all arena memory and credits it back to the MemoryAcquirer.
//
// Free is idempotent. All slices allocated from this arena become invalid,
// and later allocations fail with ErrClosed.
func (a *Arena) Free() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	for _, m := range a.mappings {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
		a.stats.MappingsReleased.Add(1)
	}
	a.mappings = nil

	reserved := a.stats.BytesReserved.Swap(0)
	if a.acquirer != nil && reserved > 0 {
		a.acquirer.ReleaseMemory(int64(reserved)) //nolint:gosec // bounded by int-sized allocations
	}

	return errors.Join(errs...)
}

// Closed reports whether Free has been called.
func (a *Arena) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{mappings: %d, reserved: %.2f KB, allocs: %d}",
		stats.ActiveMappings,
		float64(stats.BytesReserved)/1024,
		stats.TotalAllocs,
	)
}
