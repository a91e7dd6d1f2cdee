package vfx

import (
	"math"

	"github.com/lixenwraith/skullblast/vmath"
)

// Ring tuning
const (
	RingMinCount           = 1
	RingMaxCount           = 4
	RingDefaultCount       = 2
	RingDefaultStartRadius = 16.0
	RingDefaultGrowth      = 240.0

	ringThicknessDecay = 0.992
	ringMinThickness   = 0.6
	ringBaseThickness  = 5.5
	ringBaseLife       = 0.38
	ringLifeStep       = 0.10
)

// RingWave is one expanding circle of a glow
type RingWave struct {
	Center    vmath.Vec2
	Radius    float64
	Thickness float64
	Life      float64
	MaxLife   float64
	Growth    float64 // Radius units per second
}

// Step expands, thins and ages the ring
func (r *RingWave) Step(dt float64) {
	r.Radius += r.Growth * dt
	r.Thickness = math.Max(ringMinThickness, r.Thickness*ringThicknessDecay)
	r.Life = math.Max(0, r.Life-dt)
}

// Progress returns elapsed fraction of life in [0,1]
func (r *RingWave) Progress() float64 {
	return progress(r.Life, r.MaxLife)
}

// Alpha fades quadratically from 1 to 0
func (r *RingWave) Alpha() float64 {
	return alpha(r.Life, r.MaxLife)
}

// IsAlive requires remaining life only
func (r *RingWave) IsAlive() bool {
	return r.Life > lifeEpsilon
}

// Ring is a group of concentric expanding waves spawned at an impact point
type Ring struct {
	Center    vmath.Vec2
	StartedAt float64
	Waves     []RingWave
}

// NewRing builds count waves (clamped to [1,4]); later waves start wider, live longer and grow faster
func NewRing(center vmath.Vec2, now float64, count int, startRadius, growth float64) *Ring {
	n := vmath.ClampInt(count, RingMinCount, RingMaxCount)
	r := &Ring{
		Center:    center,
		StartedAt: now,
		Waves:     make([]RingWave, 0, n),
	}

	for i := 0; i < n; i++ {
		fi := float64(i)
		life := ringBaseLife + fi*ringLifeStep
		r.Waves = append(r.Waves, RingWave{
			Center:    center,
			Radius:    startRadius * (1 + fi*0.22),
			Thickness: ringBaseThickness - fi,
			Life:      life,
			MaxLife:   life,
			Growth:    growth * (0.9 + fi*0.08),
		})
	}
	return r
}

// Step advances every wave and compacts out the dead ones
func (r *Ring) Step(dt float64) {
	alive := 0
	for i := range r.Waves {
		r.Waves[i].Step(dt)
		if !r.Waves[i].IsAlive() {
			continue
		}
		r.Waves[alive] = r.Waves[i]
		alive++
	}
	r.Waves = r.Waves[:alive]
}

// IsAlive reports whether any wave remains
func (r *Ring) IsAlive() bool {
	return len(r.Waves) > 0
}
