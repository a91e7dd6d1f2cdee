package vfx

import (
	"math"
	"testing"

	"github.com/lixenwraith/skullblast/vmath"
)

// TestBurstConstruction verifies count=18 yields 18 live particles at the origin
func TestBurstConstruction(t *testing.T) {
	origin := vmath.V(100, 200)
	b := NewBurst(origin, 3, 18, BurstDefaultForce, BurstDefaultRadius)

	if len(b.Particles) != 18 {
		t.Fatalf("Expected 18 particles, got %d", len(b.Particles))
	}
	for i, p := range b.Particles {
		if !p.IsAlive() {
			t.Errorf("Particle %d not alive after construction: %+v", i, p)
		}
		if p.Position != origin {
			t.Errorf("Particle %d expected at origin, got %v", i, p.Position)
		}
		if p.Alpha() != 1 {
			t.Errorf("Particle %d expected alpha 1 at birth, got %f", i, p.Alpha())
		}
	}
	if !b.IsAlive() {
		t.Error("Expected burst alive after construction")
	}
}

func TestBurstCountClamped(t *testing.T) {
	if got := len(NewBurst(vmath.Vec2{}, 0, 1, 100, 5).Particles); got != BurstMinCount {
		t.Errorf("Expected %d particles for low count, got %d", BurstMinCount, got)
	}
	if got := len(NewBurst(vmath.Vec2{}, 0, 500, 100, 5).Particles); got != BurstMaxCount {
		t.Errorf("Expected %d particles for high count, got %d", BurstMaxCount, got)
	}
}

// TestBurstParticlesDieAfterMaxLife steps every particle past its own MaxLife
func TestBurstParticlesDieAfterMaxLife(t *testing.T) {
	b := NewBurst(vmath.Vec2{}, 0, 18, BurstDefaultForce, BurstDefaultRadius)
	particles := append([]Particle(nil), b.Particles...)

	for i := range particles {
		p := &particles[i]
		maxLife := p.MaxLife
		elapsed := 0.0
		for elapsed <= maxLife {
			p.Step(0.05)
			elapsed += 0.05
		}
		if p.IsAlive() {
			t.Errorf("Particle %d still alive after %f s (max %f)", i, elapsed, maxLife)
		}
	}

	// Whole burst empties within the longest lifetime (0.55 + 9*0.05 = 1.0)
	for i := 0; i < 25; i++ {
		b.Step(0.05)
	}
	if b.IsAlive() {
		t.Errorf("Expected burst empty after 1.25 s, %d particles left", len(b.Particles))
	}
}

func TestBurstStepMotion(t *testing.T) {
	b := NewBurst(vmath.Vec2{}, 0, 6, 100, 7)
	v0 := b.Particles[0].Velocity
	r0 := b.Particles[0].Radius

	b.Step(0.1)

	p := b.Particles[0]
	want := v0.Scale(0.1)
	if math.Abs(p.Position.X-want.X) > 1e-9 || math.Abs(p.Position.Y-want.Y) > 1e-9 {
		t.Errorf("Expected position %v, got %v", want, p.Position)
	}
	if math.Abs(p.Velocity.X-v0.X*0.985) > 1e-9 {
		t.Errorf("Expected drag 0.985 on velocity, got %v from %v", p.Velocity, v0)
	}
	if math.Abs(p.Radius-r0*0.992) > 1e-9 {
		t.Errorf("Expected radius %f, got %f", r0*0.992, p.Radius)
	}
	if p.Alpha() >= 1 || p.Alpha() <= 0 {
		t.Errorf("Expected partial alpha, got %f", p.Alpha())
	}
}

func TestProgressWithZeroMaxLife(t *testing.T) {
	p := Particle{Life: 1, MaxLife: 0, Radius: 5}
	if p.Progress() != 1 || p.Alpha() != 0 {
		t.Errorf("Expected progress 1 and alpha 0, got %f/%f", p.Progress(), p.Alpha())
	}
}

func TestRingConstruction(t *testing.T) {
	r := NewRing(vmath.V(5, 5), 0, RingDefaultCount, RingDefaultStartRadius, RingDefaultGrowth)

	if len(r.Waves) != 2 {
		t.Fatalf("Expected 2 waves, got %d", len(r.Waves))
	}
	if r.Waves[0].Radius != 16 {
		t.Errorf("Expected first wave radius 16, got %f", r.Waves[0].Radius)
	}
	if math.Abs(r.Waves[1].Radius-16*1.22) > 1e-9 {
		t.Errorf("Expected second wave radius %f, got %f", 16*1.22, r.Waves[1].Radius)
	}
	if r.Waves[1].Thickness != 4.5 {
		t.Errorf("Expected second wave thickness 4.5, got %f", r.Waves[1].Thickness)
	}

	if got := len(NewRing(vmath.Vec2{}, 0, 0, 10, 10).Waves); got != 1 {
		t.Errorf("Expected clamp to 1 wave, got %d", got)
	}
	if got := len(NewRing(vmath.Vec2{}, 0, 9, 10, 10).Waves); got != 4 {
		t.Errorf("Expected clamp to 4 waves, got %d", got)
	}
}

func TestRingExpandsAndExpires(t *testing.T) {
	r := NewRing(vmath.Vec2{}, 0, 1, 16, 240)

	r.Step(0.1)
	w := r.Waves[0]
	if math.Abs(w.Radius-(16+240*0.9*0.1)) > 1e-9 {
		t.Errorf("Expected radius %f, got %f", 16+240*0.9*0.1, w.Radius)
	}
	if w.Thickness < 0.6 {
		t.Errorf("Expected thickness floor 0.6, got %f", w.Thickness)
	}

	// Life 0.38 exhausted well within 0.5 s
	for i := 0; i < 5; i++ {
		r.Step(0.1)
	}
	if r.IsAlive() {
		t.Error("Expected ring expired after 0.6 s")
	}
}
