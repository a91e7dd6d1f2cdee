package vfx

import (
	"math"

	"github.com/lixenwraith/skullblast/vmath"
)

// Burst tuning
const (
	BurstMinCount      = 6
	BurstMaxCount      = 44
	BurstDefaultCount  = 18
	BurstDefaultForce  = 520.0
	BurstDefaultRadius = 7.0

	// Per-step decay factors, applied once per Step regardless of dt
	burstDrag       = 0.985
	burstShrink     = 0.992
	burstMinRadius  = 0.2
	lifeEpsilon     = 0.001
	burstBaseLife   = 0.55
	burstLifeStep   = 0.05
	burstSpeedBase  = 0.78
	burstSpeedStep  = 0.03
	burstRadiusBase = 0.75
	burstRadiusStep = 0.05
	burstJitter     = 0.06
)

// Particle is a single radial burst fragment
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Life     float64
	MaxLife  float64
}

// Step integrates, drags, shrinks and ages the particle
func (p *Particle) Step(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity = p.Velocity.Scale(burstDrag)
	p.Life = math.Max(0, p.Life-dt)
	p.Radius *= burstShrink
}

// Progress returns elapsed fraction of life in [0,1]
func (p *Particle) Progress() float64 {
	return progress(p.Life, p.MaxLife)
}

// Alpha fades quadratically from 1 to 0 over the particle's life
func (p *Particle) Alpha() float64 {
	return alpha(p.Life, p.MaxLife)
}

// IsAlive requires remaining life and a visible radius
func (p *Particle) IsAlive() bool {
	return p.Life > lifeEpsilon && p.Radius > burstMinRadius
}

// Burst is a radial explosion of particles spawned at an impact point
type Burst struct {
	Origin    vmath.Vec2
	StartedAt float64
	Particles []Particle
}

// NewBurst builds count particles (clamped to [6,44]) evenly spread around origin
// Per-particle jitter is index-derived, so identical inputs yield identical bursts
func NewBurst(origin vmath.Vec2, now float64, count int, strength, baseRadius float64) *Burst {
	c := vmath.ClampInt(count, BurstMinCount, BurstMaxCount)
	b := &Burst{
		Origin:    origin,
		StartedAt: now,
		Particles: make([]Particle, 0, c),
	}

	for i := 0; i < c; i++ {
		a := float64(i) / float64(c) * 2 * math.Pi
		jitter := float64((i*37)%11-5) * burstJitter
		angle := a + jitter

		speed := strength * (burstSpeedBase + float64((i*17)%9)*burstSpeedStep)
		radius := baseRadius * (burstRadiusBase + float64((i*13)%7)*burstRadiusStep)
		life := burstBaseLife + float64((i*19)%10)*burstLifeStep

		b.Particles = append(b.Particles, Particle{
			Position: origin,
			Velocity: vmath.FromAngle(angle).Scale(speed),
			Radius:   radius,
			Life:     life,
			MaxLife:  life,
		})
	}
	return b
}

// Step advances every particle and compacts out the dead ones
func (b *Burst) Step(dt float64) {
	alive := 0
	for i := range b.Particles {
		b.Particles[i].Step(dt)
		if !b.Particles[i].IsAlive() {
			continue
		}
		b.Particles[alive] = b.Particles[i]
		alive++
	}
	b.Particles = b.Particles[:alive]
}

// IsAlive reports whether any particle remains
func (b *Burst) IsAlive() bool {
	return len(b.Particles) > 0
}

func progress(life, maxLife float64) float64 {
	if maxLife <= 0 {
		return 1
	}
	return vmath.Clamp(1-life/maxLife, 0, 1)
}

func alpha(life, maxLife float64) float64 {
	x := 1 - progress(life, maxLife)
	return x * x
}
