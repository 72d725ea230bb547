// Package memory provides a typed object pool for hot-path
// allocations. Orders churn quickly through the engine; recycling
// them keeps the matching path off the allocator.
package memory

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
