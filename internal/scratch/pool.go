package scratch

import "sync"

// Buffer holds a reusable slice.
type Buffer[T any] struct {
	data []T
}

// Slice returns the live part of the buffer.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// resize sets the length to n, reusing capacity when possible. Stale contents
// are kept; callers overwrite the whole slice.
func (b *Buffer[T]) resize(n int) {
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = make([]T, n)
}

// Pool provides sync.Pool-based reuse of Buffers of one element type.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer of length n. Its contents are unspecified.
func (p *Pool[T]) Get(n int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.resize(n)
	return b
}

// Put returns b to the pool. b must not be used afterwards.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// Number lists the element types with a shared pool.
type Number interface {
	float32 | float64 | int32 | int64
}

var (
	float32s = NewPool[float32]()
	float64s = NewPool[float64]()
	int32s   = NewPool[int32]()
	int64s   = NewPool[int64]()
)

// Float64s is the shared pool for float64 scratch.
func Float64s() *Pool[float64] { return float64s }

// Float32s is the shared pool for float32 scratch.
func Float32s() *Pool[float32] { return float32s }

// For returns the shared pool for T.
func For[T Number]() *Pool[T] {
	var p any
	switch any(*new(T)).(type) {
	case float32:
		p = float32s
	case float64:
		p = float64s
	case int32:
		p = int32s
	case int64:
		p = int64s
	}
	return p.(*Pool[T])
}
