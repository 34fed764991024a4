package status

import (
	"sort"
	"sync"
)

// Keyed lazily creates one metric of type T per key
// Creation locks; callers cache the returned pointer and update it lock-free
type Keyed[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewKeyed creates an empty set
func NewKeyed[T any]() *Keyed[T] {
	return &Keyed[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (k *Keyed[T]) Get(key string) *T {
	k.mu.RLock()
	ptr, ok := k.items[key]
	k.mu.RUnlock()
	if ok {
		return ptr
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if ptr, ok := k.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	k.items[key] = ptr
	return ptr
}

// Has reports whether key was ever requested
func (k *Keyed[T]) Has(key string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.items[key]
	return ok
}

// Each visits metrics in key order
func (k *Keyed[T]) Each(fn func(key string, ptr *T)) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	keys := make([]string, 0, len(k.items))
	for key := range k.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fn(key, k.items[key])
	}
}

// Len returns the number of metrics
func (k *Keyed[T]) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.items)
}
