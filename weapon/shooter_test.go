package weapon

import (
	"math"
	"testing"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/vmath"
)

// TestShooterCooldown verifies shots at 0.0, 0.05, 0.13 with a 0.12 s cooldown
func TestShooterCooldown(t *testing.T) {
	s := NewShooter(DefaultSettings(), vmath.V(200, 650))

	tests := []struct {
		now  float64
		want bool
	}{
		{0.0, true},
		{0.05, false},
		{0.13, true},
	}

	for _, tt := range tests {
		p, ok := s.Shoot(component.KindRed, tt.now, 14)
		if ok != tt.want {
			t.Errorf("Shoot at %.2f: expected %v, got %v", tt.now, tt.want, ok)
		}
		if !ok && p != (component.Projectile{}) {
			t.Errorf("Shoot at %.2f: expected zero projectile on refusal, got %+v", tt.now, p)
		}
	}
}

func TestShooterRefusalKeepsCooldown(t *testing.T) {
	s := NewShooter(DefaultSettings(), vmath.Vec2{})
	s.Shoot(component.KindRed, 1.0, 14)
	ready := s.ReadyAt()

	s.Shoot(component.KindRed, 1.05, 14)

	if s.ReadyAt() != ready {
		t.Errorf("Expected cooldown unchanged at %f, got %f", ready, s.ReadyAt())
	}
}

func TestShooterProjectile(t *testing.T) {
	settings := DefaultSettings()
	settings.Bounces = 2
	muzzle := vmath.V(200, 650)
	s := NewShooter(settings, muzzle)
	s.SetAngle(-math.Pi / 2)
	s.SetPowerNormalized(1)

	p, ok := s.Shoot(component.KindGreen, 3, 14)
	if !ok {
		t.Fatal("Expected shot to succeed")
	}

	// Angle clamped to -0.45π
	wantAngle := -0.45 * math.Pi
	wantVel := vmath.V(math.Cos(wantAngle)*900, math.Sin(wantAngle)*900)
	if math.Abs(p.Velocity.X-wantVel.X) > 1e-9 || math.Abs(p.Velocity.Y-wantVel.Y) > 1e-9 {
		t.Errorf("Expected velocity %v, got %v", wantVel, p.Velocity)
	}
	if p.Position != muzzle {
		t.Errorf("Expected muzzle position %v, got %v", muzzle, p.Position)
	}
	if p.BornAt != 3 || p.MaxLife != component.DefaultProjectileLife {
		t.Errorf("Expected born 3 life %f, got %f/%f", component.DefaultProjectileLife, p.BornAt, p.MaxLife)
	}
	if p.BouncesLeft != 2 || p.Kind != component.KindGreen || p.Radius != 14 {
		t.Errorf("Unexpected projectile settings: %+v", p)
	}
	if p.ID != 0 {
		t.Errorf("Expected unassigned ID, got %d", p.ID)
	}
}

func TestShooterClamping(t *testing.T) {
	s := NewShooter(DefaultSettings(), vmath.Vec2{})

	if s.Power() != DefaultPower {
		t.Errorf("Expected initial power %f, got %f", DefaultPower, s.Power())
	}

	s.SetPowerNormalized(5)
	if s.Power() != DefaultMaxPower {
		t.Errorf("Expected power clamped to %f, got %f", DefaultMaxPower, s.Power())
	}
	s.SetPowerNormalized(-1)
	if s.Power() != DefaultMinPower {
		t.Errorf("Expected power clamped to %f, got %f", DefaultMinPower, s.Power())
	}

	for i := 0; i < 100; i++ {
		s.AdjustAngle(0.1)
	}
	if s.Angle() != DefaultMaxAngle {
		t.Errorf("Expected angle clamped to %f, got %f", DefaultMaxAngle, s.Angle())
	}
	s.SetAngle(-10)
	if s.Angle() != DefaultMinAngle {
		t.Errorf("Expected angle clamped to %f, got %f", DefaultMinAngle, s.Angle())
	}
}
