package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart      SoundType = iota // Session start sweep
	SoundShot                        // Projectile launch
	SoundMerge                       // Matching hit, pitch follows the chain
	SoundClear                       // Run cleared
	SoundChainReset                  // Chain banked after idle window
	SoundBreach                      // Target reached the path end
	soundTypeCount
)

// Sound durations and envelopes
const (
	StartSoundDuration = 420 * time.Millisecond
	StartSoundAttack   = 20 * time.Millisecond
	StartSoundRelease  = 200 * time.Millisecond

	ShotSoundDuration = 70 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 50 * time.Millisecond

	MergeSoundDuration = 120 * time.Millisecond
	MergeSoundAttack   = 5 * time.Millisecond
	MergeSoundRelease  = 80 * time.Millisecond

	ClearNoteDuration = 90 * time.Millisecond
	ClearNoteAttack   = 4 * time.Millisecond
	ClearNoteRelease  = 60 * time.Millisecond
	ClearMaxNotes     = 5

	ChainResetSoundDuration = 160 * time.Millisecond
	ChainResetSoundAttack   = 10 * time.Millisecond
	ChainResetSoundRelease  = 120 * time.Millisecond

	BreachSoundDuration = 300 * time.Millisecond
	BreachSoundAttack   = 5 * time.Millisecond
	BreachSoundRelease  = 150 * time.Millisecond
)

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)
