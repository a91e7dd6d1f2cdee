package component

import (
	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/vmath"
)

// Entity is an opaque identity assigned by the engine's id counter
type Entity uint64

// Target is a ball that can be matched and cleared
// Motion mode is chosen by the caller: Update for free flight, MoveAlongPath for path-bound
type Target struct {
	ID       Entity
	Kind     Kind
	Position vmath.Vec2
	Velocity vmath.Vec2 // Free flight only
	Radius   float64
	Active   bool    // Inactive targets are skipped by motion and collision until purged
	PathT    float64 // Normalized progress in [0,1] while path-bound
}

// NewTarget creates an active target at rest
func NewTarget(id Entity, kind Kind, pos vmath.Vec2, radius float64) Target {
	return Target{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Radius:   radius,
		Active:   true,
	}
}

// Update integrates free flight: position += velocity*dt
// No-op while inactive
func (t *Target) Update(dt float64) {
	if !t.Active {
		return
	}
	t.Position = physics.Integrate(t.Position, t.Velocity, dt)
}

// MoveAlongPath advances PathT by speed*dt, clamped to 1, and resolves Position from path
// PathT never decreases and never wraps; no-op while inactive
func (t *Target) MoveAlongPath(path physics.Path, speed, dt float64) {
	if !t.Active {
		return
	}
	if advance := speed * dt; advance > 0 {
		t.PathT += advance
	}
	if t.PathT > 1 {
		t.PathT = 1
	}
	t.Position = path.PositionAt(t.PathT)
}

// AtPathEnd reports whether the target has reached the end of its path
func (t *Target) AtPathEnd() bool {
	return t.PathT >= 1
}

// Circle returns the collision shape
func (t *Target) Circle() physics.Circle {
	return physics.Circle{Center: t.Position, Radius: t.Radius}
}

// Collides reports whether t touches or overlaps the given shape
func (t *Target) Collides(other physics.Circle) bool {
	return physics.CirclesOverlap(t.Circle(), other)
}
