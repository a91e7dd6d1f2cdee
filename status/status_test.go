package status

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/event"
)

func TestFamilyCachesPointer(t *testing.T) {
	f := NewFamily[atomic.Int64]()
	a := f.Metric("x")
	a.Add(3)
	if b := f.Metric("x"); b != a || b.Load() != 3 {
		t.Error("Expected Metric to return the cached pointer")
	}
	if got, ok := f.Lookup("x"); !ok || got != a {
		t.Error("Expected Lookup to find x")
	}
	if _, ok := f.Lookup("y"); ok {
		t.Error("Expected Lookup to miss y")
	}
	if f.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", f.Len())
	}
}

func TestFamilyConcurrentMetric(t *testing.T) {
	f := NewFamily[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Metric("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := f.Metric("shared").Load(); got != 1600 {
		t.Errorf("Expected 1600, got %d", got)
	}
	if f.Len() != 1 {
		t.Errorf("Expected a single registration, got %d", f.Len())
	}
}

func TestFamilyAllSorted(t *testing.T) {
	f := NewFamily[Gauge]()
	for _, k := range []string{"c", "a", "b"} {
		f.Metric(k)
	}
	var keys []string
	for k := range f.All() {
		keys = append(keys, k)
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}

	keys = keys[:0]
	for k := range f.All() {
		keys = append(keys, k)
		break
	}
	if len(keys) != 1 {
		t.Errorf("Expected early break to stop iteration, got %v", keys)
	}
}

func TestGauge(t *testing.T) {
	var g Gauge
	if g.Smooth(10, 0.5) != 10 {
		t.Error("Expected first sample taken as is")
	}
	if got := g.Smooth(20, 0.5); got != 15 {
		t.Errorf("Expected 15, got %f", got)
	}
	g.Set(2)
	if g.Max(1) != 2 || g.Max(5) != 5 || g.Get() != 5 {
		t.Errorf("Unexpected Max behaviour, value %f", g.Get())
	}
}

func TestRegistryWriteTo(t *testing.T) {
	r := NewRegistry()
	r.Counters.Metric("b.count").Add(7)
	r.Counters.Metric("a.count").Add(1)
	r.Gauges.Metric("z.gauge").Set(1.5)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	want := "a.count 1\nb.count 7\nz.gauge 1.500\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
	if n != int64(len(want)) {
		t.Errorf("Expected %d bytes, got %d", len(want), n)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}

func TestSessionObserve(t *testing.T) {
	s := NewSession(nil)

	s.Observe(engine.Snapshot{ChainCount: 2, Total: 30, Events: []event.Event{
		{Type: event.EventShot}, {Type: event.EventMerge},
	}}, 2*time.Millisecond)
	s.Observe(engine.Snapshot{ChainCount: 1, Total: 45, Events: []event.Event{
		{Type: event.EventMerge},
	}}, 4*time.Millisecond)

	if s.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", s.Frames())
	}
	if s.EventCount(event.EventMerge) != 2 || s.EventCount(event.EventShot) != 1 {
		t.Errorf("Unexpected event counts: merge %d shot %d", s.EventCount(event.EventMerge), s.EventCount(event.EventShot))
	}
	if s.EventCount(event.EventBreach) != 0 {
		t.Error("Expected zero for unseen event type")
	}
	if _, ok := s.Registry().Counters.Lookup(EventKey(event.EventBreach)); ok {
		t.Error("EventCount must not register unseen keys")
	}
	if got := s.StepMillis(); got < 2.19 || got > 2.21 {
		t.Errorf("Expected smoothed step near 2.2ms, got %f", got)
	}
	if best := s.Registry().Gauges.Metric(KeyBestChain).Get(); best != 2 {
		t.Errorf("Expected best chain 2, got %f", best)
	}
	if total := s.Registry().Gauges.Metric(KeyTotal).Get(); total != 45 {
		t.Errorf("Expected total 45, got %f", total)
	}
}

func TestEventKey(t *testing.T) {
	if got := EventKey(event.EventChainReset); got != "event.chainreset" {
		t.Errorf("Unexpected key %q", got)
	}
}
