package engine

// ObjectPool recycles short-lived objects to avoid allocation churn
// Unbounded: grows to the high-water mark and never shrinks
// Released objects must not be retained by the caller
type ObjectPool[T any] struct {
	free    []T
	factory func() T
	reset   func(T)
	created int
}

// NewObjectPool creates a pool with a constructor and a reset hook applied on reuse
func NewObjectPool[T any](factory func() T, reset func(T)) *ObjectPool[T] {
	return &ObjectPool[T]{
		factory: factory,
		reset:   reset,
	}
}

// Acquire returns a recycled object after resetting it, or a new one from the factory
func (p *ObjectPool[T]) Acquire() T {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		if p.reset != nil {
			p.reset(obj)
		}
		return obj
	}
	p.created++
	return p.factory()
}

// Release returns an object to the pool without validation
func (p *ObjectPool[T]) Release(obj T) {
	p.free = append(p.free, obj)
}

// Free returns the number of idle objects
func (p *ObjectPool[T]) Free() int {
	return len(p.free)
}

// Created returns the number of objects ever built by the factory
func (p *ObjectPool[T]) Created() int {
	return p.created
}
