package component

import (
	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/vmath"
)

// Projectile defaults
const (
	DefaultProjectileLife = 6.0
	DefaultBounceDamp     = 0.98
)

// Projectile is a player-fired ball with finite lifetime and a bounce budget
// The engine decides when to bounce and when to remove it
type Projectile struct {
	ID          Entity
	Kind        Kind
	Position    vmath.Vec2
	Velocity    vmath.Vec2
	Radius      float64
	BornAt      float64 // Simulation seconds
	MaxLife     float64 // Seconds
	BouncesLeft int
}

// Step performs linear integration without drag
func (p *Projectile) Step(dt float64) {
	p.Position = physics.Integrate(p.Position, p.Velocity, dt)
}

// IsExpired is a lifetime check only, bounds are the engine's concern
func (p *Projectile) IsExpired(now float64) bool {
	return now-p.BornAt >= p.MaxLife
}

// CanBounce reports whether any bounce budget remains
func (p *Projectile) CanBounce() bool {
	return p.BouncesLeft > 0
}

// Bounce spends one unit of budget, negates the requested axes and scales velocity by damp
// Silently ignored when the budget is exhausted
func (p *Projectile) Bounce(horizontal, vertical bool, damp float64) {
	if p.BouncesLeft <= 0 {
		return
	}
	p.BouncesLeft--
	p.Velocity = physics.Damp(physics.ReflectAxes(p.Velocity, horizontal, vertical), damp)
}

// Circle returns the collision shape
func (p *Projectile) Circle() physics.Circle {
	return physics.Circle{Center: p.Position, Radius: p.Radius}
}
