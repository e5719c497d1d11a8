package pool

import "sync"

// Pool is a typed wrapper around sync.Pool. New produces a fresh zero value
// when the pool is empty; Reset, if non-nil, is applied to a value before it
// is handed back out by Get, so callers never observe stale contents from a
// previous borrower.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a Pool whose values are produced by newFn. resetFn may be nil
// if values need no clearing between borrows.
func New[T any](newFn func() *T, resetFn func(*T)) *Pool[T] {
	return &Pool[T]{
		pool:  sync.Pool{New: func() any { return newFn() }},
		reset: resetFn,
	}
}

// Get borrows a value from the pool.
func (p *Pool[T]) Get() *T {
	v := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(v)
	}
	return v
}

// Put returns a value to the pool.
func (p *Pool[T]) Put(v *T) {
	p.pool.Put(v)
}
