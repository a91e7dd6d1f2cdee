package status

import (
	"iter"
	"slices"
	"sync"
	"sync/atomic"
)

// Family is a named set of metrics of one kind, created on first use
// Lookups after creation never lock; hosts cache the returned pointers anyway
type Family[T any] struct {
	metrics sync.Map // string -> *T
	size    atomic.Int32
}

// NewFamily creates an empty Family
func NewFamily[T any]() *Family[T] {
	return &Family[T]{}
}

// Metric returns the metric for key, registering a zero value on first use
func (f *Family[T]) Metric(key string) *T {
	if v, ok := f.metrics.Load(key); ok {
		return v.(*T)
	}
	v, loaded := f.metrics.LoadOrStore(key, new(T))
	if !loaded {
		f.size.Add(1)
	}
	return v.(*T)
}

// Lookup returns the metric for key without registering it
func (f *Family[T]) Lookup(key string) (*T, bool) {
	v, ok := f.metrics.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// All yields every metric in key order
func (f *Family[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		var keys []string
		f.metrics.Range(func(k, _ any) bool {
			keys = append(keys, k.(string))
			return true
		})
		slices.Sort(keys)
		for _, k := range keys {
			m, ok := f.Lookup(k)
			if ok && !yield(k, m) {
				return
			}
		}
	}
}

// Len returns the number of registered metrics
func (f *Family[T]) Len() int {
	return int(f.size.Load())
}
