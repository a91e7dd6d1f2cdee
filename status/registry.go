package status

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Callers cache pointers once; per-frame code writes directly to atomics
type Registry struct {
	Counters *Family[atomic.Int64]
	Gauges   *Family[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewFamily[atomic.Int64](),
		Gauges:   NewFamily[Gauge](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Len() + r.Gauges.Len()
}

// WriteTo writes one "key value" line per metric, counters first, each group sorted
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	write := func(key, val string) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, "%s %s\n", key, val)
		total += int64(n)
	}

	for key, c := range r.Counters.All() {
		write(key, strconv.FormatInt(c.Load(), 10))
	}
	for key, g := range r.Gauges.All() {
		write(key, strconv.FormatFloat(g.Get(), 'f', 3, 64))
	}
	return total, err
}
