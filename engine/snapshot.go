package engine

import (
	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/event"
	"github.com/lixenwraith/skullblast/vfx"
	"github.com/lixenwraith/skullblast/vmath"
)

// State is the engine lifecycle phase
type State uint8

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// TargetView is the render-facing copy of a target
type TargetView struct {
	ID       component.Entity `msgpack:"id"`
	Kind     component.Kind   `msgpack:"kind"`
	Position vmath.Vec2       `msgpack:"pos"`
	Radius   float64          `msgpack:"r"`
	PathT    float64          `msgpack:"t"`
	OnPath   bool             `msgpack:"on_path"`
}

// ProjectileView is the render-facing copy of a projectile
type ProjectileView struct {
	ID          component.Entity `msgpack:"id"`
	Kind        component.Kind   `msgpack:"kind"`
	Position    vmath.Vec2       `msgpack:"pos"`
	Velocity    vmath.Vec2       `msgpack:"vel"`
	Radius      float64          `msgpack:"r"`
	BouncesLeft int              `msgpack:"bounces"`
}

// ParticleView is one drawable effect element
// Thickness is zero for burst particles
type ParticleView struct {
	Position  vmath.Vec2 `msgpack:"pos"`
	Radius    float64    `msgpack:"r"`
	Thickness float64    `msgpack:"w,omitempty"`
	Alpha     float64    `msgpack:"a"`
}

// EffectView groups the live elements of one burst or ring
type EffectView struct {
	Origin    vmath.Vec2     `msgpack:"origin"`
	Particles []ParticleView `msgpack:"p"`
}

// AmmoView holds the loaded and queued projectile kinds
type AmmoView struct {
	Current component.Kind `msgpack:"current"`
	Next    component.Kind `msgpack:"next"`
}

// AimView is the shooter state
type AimView struct {
	Angle  float64    `msgpack:"angle"`
	Power  float64    `msgpack:"power"`
	Muzzle vmath.Vec2 `msgpack:"muzzle"`
}

// Snapshot is an immutable per-frame view of the engine
// Every slice is freshly allocated; holding a snapshot never aliases engine state
type Snapshot struct {
	State State   `msgpack:"state"`
	Time  float64 `msgpack:"time"`

	Targets     []TargetView     `msgpack:"targets"` // Path-bound head to tail, then free
	Projectiles []ProjectileView `msgpack:"projectiles"`
	Bursts      []EffectView     `msgpack:"bursts"`
	Rings       []EffectView     `msgpack:"rings"`

	ChainCount      int `msgpack:"chain_count"`
	ChainScore      int `msgpack:"chain_score"`
	ChainMultiplier int `msgpack:"chain_mult"`
	Total           int `msgpack:"total"` // Banked plus live chain score
	Breaches        int `msgpack:"breaches"`

	Ammo   AmmoView      `msgpack:"ammo"`
	Aim    AimView       `msgpack:"aim"`
	Events []event.Event `msgpack:"events"`
}

// snapshot builds a view of the current state carrying events
func (e *Engine) snapshot(events []event.Event) Snapshot {
	s := Snapshot{
		State:           e.state,
		Time:            e.now,
		Targets:         make([]TargetView, 0, len(e.pathTargets)+len(e.freeTargets)),
		Projectiles:     make([]ProjectileView, 0, len(e.projectiles)),
		Bursts:          make([]EffectView, 0, len(e.bursts)),
		Rings:           make([]EffectView, 0, len(e.rings)),
		ChainCount:      e.chain.Count(),
		ChainScore:      e.chain.Score(),
		ChainMultiplier: e.chain.Multiplier(),
		Total:           e.banked + e.chain.Score(),
		Breaches:        e.breaches,
		Ammo:            AmmoView{Current: e.ammo.current, Next: e.ammo.next},
		Aim: AimView{
			Angle:  e.shooter.Angle(),
			Power:  e.shooter.Power(),
			Muzzle: e.shooter.Muzzle(),
		},
		Events: events,
	}

	for i := range e.pathTargets {
		s.Targets = append(s.Targets, targetView(&e.pathTargets[i], true))
	}
	for i := range e.freeTargets {
		s.Targets = append(s.Targets, targetView(&e.freeTargets[i], false))
	}

	for i := range e.projectiles {
		p := &e.projectiles[i]
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:          p.ID,
			Kind:        p.Kind,
			Position:    p.Position,
			Velocity:    p.Velocity,
			Radius:      p.Radius,
			BouncesLeft: p.BouncesLeft,
		})
	}

	for _, b := range e.bursts {
		s.Bursts = append(s.Bursts, burstView(b))
	}
	for _, r := range e.rings {
		s.Rings = append(s.Rings, ringView(r))
	}

	return s
}

func targetView(t *component.Target, onPath bool) TargetView {
	return TargetView{
		ID:       t.ID,
		Kind:     t.Kind,
		Position: t.Position,
		Radius:   t.Radius,
		PathT:    t.PathT,
		OnPath:   onPath,
	}
}

func burstView(b *vfx.Burst) EffectView {
	v := EffectView{
		Origin:    b.Origin,
		Particles: make([]ParticleView, 0, len(b.Particles)),
	}
	for i := range b.Particles {
		p := &b.Particles[i]
		v.Particles = append(v.Particles, ParticleView{
			Position: p.Position,
			Radius:   p.Radius,
			Alpha:    p.Alpha(),
		})
	}
	return v
}

func ringView(r *vfx.Ring) EffectView {
	v := EffectView{
		Origin:    r.Center,
		Particles: make([]ParticleView, 0, len(r.Waves)),
	}
	for i := range r.Waves {
		w := &r.Waves[i]
		v.Particles = append(v.Particles, ParticleView{
			Position:  w.Center,
			Radius:    w.Radius,
			Thickness: w.Thickness,
			Alpha:     w.Alpha(),
		})
	}
	return v
}
