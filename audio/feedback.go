package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/skullblast/event"
)

// SoundFor maps an engine event to its sound and count parameter
func SoundFor(ev event.Event) (SoundType, int, bool) {
	switch ev.Type {
	case event.EventStart:
		return SoundStart, 0, true
	case event.EventShot:
		return SoundShot, 0, true
	case event.EventMerge:
		return SoundMerge, ev.Count, true
	case event.EventClear:
		return SoundClear, ev.Count, true
	case event.EventChainReset:
		return SoundChainReset, ev.Count, true
	case event.EventBreach:
		return SoundBreach, 0, true
	default:
		return 0, 0, false
	}
}

// Feedback turns engine events into sounds on the speaker
// All methods are safe without Initialize; sounds are then dropped silently
type Feedback struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewFeedback creates a feedback player; nil cfg means DefaultConfig
func NewFeedback(cfg *Config) *Feedback {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	f := &Feedback{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	f.muted.Store(!cfg.Enabled)
	return f
}

// Initialize sets up the speaker and starts the mixer
// Returns ErrDisabled when audio is turned off in config
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if !f.config.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(f.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup clears pending sounds and closes the speaker
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}

	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	f.initialized = false
}

// Handle plays the sound of every event in order
func (f *Feedback) Handle(events []event.Event) {
	for _, ev := range events {
		if st, count, ok := SoundFor(ev); ok {
			f.Play(st, count)
		}
	}
}

// Play queues a sound, returns false when it was dropped
func (f *Feedback) Play(st SoundType, count int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted.Load() {
		f.dropped.Add(1)
		return false
	}

	s := GetSoundEffect(st, f.config, count)
	if s == nil {
		f.dropped.Add(1)
		return false
	}

	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()

	f.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now audible
func (f *Feedback) ToggleMute() bool {
	newMute := !f.muted.Load()
	f.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (f *Feedback) IsMuted() bool {
	return f.muted.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (f *Feedback) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	f.mu.Lock()
	f.config.MasterVolume = vol
	f.mu.Unlock()
}

// Stats returns played and dropped counts
func (f *Feedback) Stats() (played, dropped uint64) {
	return f.played.Load(), f.dropped.Load()
}
