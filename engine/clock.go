package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall time to hosts
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SimClock converts provider time into simulation seconds since its epoch
// Engine methods take float seconds; hosts read them from a SimClock
type SimClock struct {
	provider TimeProvider
	epoch    time.Time
}

// NewSimClock starts a clock whose zero is the provider's current time
func NewSimClock(provider TimeProvider) *SimClock {
	return &SimClock{
		provider: provider,
		epoch:    provider.Now(),
	}
}

// Now returns seconds elapsed since the epoch
func (c *SimClock) Now() float64 {
	return c.provider.Now().Sub(c.epoch).Seconds()
}
