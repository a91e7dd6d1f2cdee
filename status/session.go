package status

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/event"
)

// Metric keys
const (
	KeyFrames     = "frame.count"
	KeyStepMillis = "frame.step_ms" // Smoothed wall time of one engine step
	KeyBestChain  = "chain.best"
	KeyTotal      = "score.total"
	keyEventPfx   = "event."
)

const stepSmoothing = 0.1

// Session tracks per-frame metrics of one play session
type Session struct {
	reg *Registry

	frames    *atomic.Int64
	stepMS    *Gauge
	bestChain *Gauge
	total     *Gauge
	events    map[event.EventType]*atomic.Int64
}

// NewSession caches metric pointers from reg, nil creates a fresh registry
func NewSession(reg *Registry) *Session {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Session{
		reg:       reg,
		frames:    reg.Counters.Metric(KeyFrames),
		stepMS:    reg.Gauges.Metric(KeyStepMillis),
		bestChain: reg.Gauges.Metric(KeyBestChain),
		total:     reg.Gauges.Metric(KeyTotal),
		events:    make(map[event.EventType]*atomic.Int64),
	}
}

// Registry returns the backing registry
func (s *Session) Registry() *Registry {
	return s.reg
}

// EventKey returns the counter key for an event type
func EventKey(t event.EventType) string {
	return keyEventPfx + strings.ToLower(t.String())
}

// Observe records one stepped frame and how long the step took
// Not safe for concurrent callers; readers may poll the registry freely
func (s *Session) Observe(snap engine.Snapshot, step time.Duration) {
	s.frames.Add(1)
	s.stepMS.Smooth(float64(step)/float64(time.Millisecond), stepSmoothing)
	s.bestChain.Max(float64(snap.ChainCount))
	s.total.Set(float64(snap.Total))

	for _, ev := range snap.Events {
		c, ok := s.events[ev.Type]
		if !ok {
			c = s.reg.Counters.Metric(EventKey(ev.Type))
			s.events[ev.Type] = c
		}
		c.Add(1)
	}
}

// Frames returns the number of observed frames
func (s *Session) Frames() int64 {
	return s.frames.Load()
}

// StepMillis returns the smoothed step time
func (s *Session) StepMillis() float64 {
	return s.stepMS.Get()
}

// EventCount returns how many events of type t were observed
func (s *Session) EventCount(t event.EventType) int64 {
	c, ok := s.reg.Counters.Lookup(EventKey(t))
	if !ok {
		return 0
	}
	return c.Load()
}
