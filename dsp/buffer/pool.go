package buffer

import "sync"

// Pool recycles Buffers across calls so steady-state frame processing does
// not allocate scratch memory.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer of length n with unspecified contents.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reset(n)

	return b
}

// GetZeroed returns a zero-filled Buffer of length n.
func (p *Pool) GetZeroed(n int) *Buffer {
	b := p.Get(n)
	b.Zero()

	return b
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}

	p.pool.Put(b)
}

var shared = NewPool()

// Get takes a Buffer of length n from the shared pool.
func Get(n int) *Buffer {
	return shared.Get(n)
}

// Put returns b to the shared pool.
func Put(b *Buffer) {
	shared.Put(b)
}
