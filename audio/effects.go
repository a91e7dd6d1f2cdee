package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding linearly to an end frequency
type oscillator struct {
	freq     float64
	glide    float64 // Frequency change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (endFreq - startFreq) / float64(samples)
	}
	return &oscillator{
		freq:     startFreq,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Base pitch of the merge blip (C5); each chain step raises it a semitone
const mergeBaseFreq = 523.25

// semitone returns freq shifted up by n semitones
func semitone(freq float64, n int) float64 {
	return freq * math.Pow(2, float64(n)/12)
}

// CreateStartSound generates a rising sweep for a new session
func CreateStartSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(220, 880, StartSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(sweep, StartSoundDuration, StartSoundAttack, StartSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundStart))
}

// CreateShotSound generates a short noisy pop for a launch
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, ShotSoundDuration, WaveNoise, rate)
	body := NewSweep(400, 180, ShotSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(
		newVolume(NewEnvelope(noise, ShotSoundDuration, ShotSoundAttack, ShotSoundRelease, rate), 0.4),
		newVolume(NewEnvelope(body, ShotSoundDuration, ShotSoundAttack, ShotSoundRelease, rate), 0.6),
	)

	return newVolume(mixed, cfg.volume(SoundShot))
}

// CreateMergeSound generates a bell blip whose pitch climbs with the chain count
func CreateMergeSound(cfg *Config, chainCount int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := semitone(mergeBaseFreq, min(max(chainCount-1, 0), 12))

	fund := NewOscillator(freq, MergeSoundDuration, WaveSine, rate)
	over := NewOscillator(freq*2, MergeSoundDuration, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(NewEnvelope(fund, MergeSoundDuration, MergeSoundAttack, MergeSoundRelease, rate), 0.7),
		newVolume(NewEnvelope(over, MergeSoundDuration, MergeSoundAttack, MergeSoundRelease/2, rate), 0.3),
	)

	return newVolume(mixed, cfg.volume(SoundMerge))
}

// CreateClearSound generates an ascending arpeggio, one note per cleared ball up to ClearMaxNotes
func CreateClearSound(cfg *Config, cleared int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := min(max(cleared, 1), ClearMaxNotes)

	// Major arpeggio steps from C5
	steps := [ClearMaxNotes]int{0, 4, 7, 12, 16}
	seq := make([]beep.Streamer, 0, notes)
	for i := 0; i < notes; i++ {
		osc := NewOscillator(semitone(mergeBaseFreq, steps[i]), ClearNoteDuration, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, ClearNoteDuration, ClearNoteAttack, ClearNoteRelease, rate))
	}

	return newVolume(beep.Seq(seq...), cfg.volume(SoundClear))
}

// CreateChainResetSound generates a soft falling tone
func CreateChainResetSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(660, 330, ChainResetSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(sweep, ChainResetSoundDuration, ChainResetSoundAttack, ChainResetSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundChainReset))
}

// CreateBreachSound generates a low harsh buzz
func CreateBreachSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90, BreachSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, BreachSoundDuration, BreachSoundAttack, BreachSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundBreach))
}

// GetSoundEffect returns the streamer for a sound type; count parameterizes merge and clear
func GetSoundEffect(st SoundType, cfg *Config, count int) beep.Streamer {
	switch st {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundMerge:
		return CreateMergeSound(cfg, count)
	case SoundClear:
		return CreateClearSound(cfg, count)
	case SoundChainReset:
		return CreateChainResetSound(cfg)
	case SoundBreach:
		return CreateBreachSound(cfg)
	default:
		return nil
	}
}
