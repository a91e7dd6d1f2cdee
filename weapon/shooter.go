package weapon

import (
	"math"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/vmath"
)

// Shooter defaults
const (
	DefaultMinAngle  = -0.45 * math.Pi
	DefaultMaxAngle  = 0.45 * math.Pi
	DefaultMinPower  = 0.25
	DefaultMaxPower  = 1.0
	DefaultPower     = 0.7
	DefaultBaseSpeed = 900.0
	DefaultCooldown  = 0.12
)

// Settings is the static tuning of a shooter
type Settings struct {
	MinAngle  float64
	MaxAngle  float64
	MinPower  float64
	MaxPower  float64
	BaseSpeed float64
	Cooldown  float64 // Seconds between shots

	ProjectileLife float64
	Bounces        int
}

// DefaultSettings returns the stock shooter tuning
func DefaultSettings() Settings {
	return Settings{
		MinAngle:       DefaultMinAngle,
		MaxAngle:       DefaultMaxAngle,
		MinPower:       DefaultMinPower,
		MaxPower:       DefaultMaxPower,
		BaseSpeed:      DefaultBaseSpeed,
		Cooldown:       DefaultCooldown,
		ProjectileLife: component.DefaultProjectileLife,
	}
}

// Shooter is the aiming and power state machine that emits projectiles under a cooldown
// Angle and power are always within their configured ranges
type Shooter struct {
	settings Settings

	angle  float64
	power  float64
	muzzle vmath.Vec2

	cooldownUntil float64
}

// NewShooter creates a shooter aimed at angle 0 with the default power, clamped into range
func NewShooter(settings Settings, muzzle vmath.Vec2) *Shooter {
	s := &Shooter{
		settings: settings,
		muzzle:   muzzle,
	}
	s.SetAngle(0)
	s.SetPowerNormalized(DefaultPower)
	return s
}

func (s *Shooter) Angle() float64 { return s.angle }
func (s *Shooter) Power() float64 { return s.power }
func (s *Shooter) Muzzle() vmath.Vec2 { return s.muzzle }
func (s *Shooter) Settings() Settings { return s.settings }
func (s *Shooter) ReadyAt() float64 { return s.cooldownUntil }
func (s *Shooter) SetMuzzle(p vmath.Vec2) { s.muzzle = p }

// SetAngle clamp-assigns the aim angle in radians
func (s *Shooter) SetAngle(a float64) {
	s.angle = vmath.Clamp(a, s.settings.MinAngle, s.settings.MaxAngle)
}

// AdjustAngle rotates the aim by delta, clamped
func (s *Shooter) AdjustAngle(delta float64) {
	s.SetAngle(s.angle + delta)
}

// SetPowerNormalized clamp-assigns the power factor
func (s *Shooter) SetPowerNormalized(p float64) {
	s.power = vmath.Clamp(p, s.settings.MinPower, s.settings.MaxPower)
}

// CanShoot reports whether the cooldown has elapsed at now
func (s *Shooter) CanShoot(now float64) bool {
	return now >= s.cooldownUntil
}

// Direction returns the unit aim vector
func (s *Shooter) Direction() vmath.Vec2 {
	return vmath.FromAngle(s.angle)
}

// Shoot emits a projectile of kind from the muzzle and arms the cooldown
// Returns false with no state change while cooling down; the caller assigns the ID
func (s *Shooter) Shoot(kind component.Kind, now, radius float64) (component.Projectile, bool) {
	if !s.CanShoot(now) {
		return component.Projectile{}, false
	}
	s.cooldownUntil = now + s.settings.Cooldown

	speed := s.settings.BaseSpeed * s.power
	return component.Projectile{
		Kind:        kind,
		Position:    s.muzzle,
		Velocity:    s.Direction().Scale(speed),
		Radius:      radius,
		BornAt:      now,
		MaxLife:     s.settings.ProjectileLife,
		BouncesLeft: max(0, s.settings.Bounces),
	}, true
}
