package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/vfx"
	"github.com/lixenwraith/skullblast/vmath"
	"github.com/lixenwraith/skullblast/weapon"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid level config")

// Area is the play-area rectangle [0,Width]x[0,Height]
type Area struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Shooter tunes the player's launcher
type Shooter struct {
	Muzzle           vmath.Vec2 `toml:"muzzle"`
	MinAngle         float64    `toml:"min_angle"`
	MaxAngle         float64    `toml:"max_angle"`
	MinPower         float64    `toml:"min_power"`
	MaxPower         float64    `toml:"max_power"`
	BaseSpeed        float64    `toml:"base_speed"`
	Cooldown         float64    `toml:"cooldown"`
	ProjectileRadius float64    `toml:"projectile_radius"`
	ProjectileLife   float64    `toml:"projectile_life"`
	Bounces          int        `toml:"bounces"`
	BounceDamp       float64    `toml:"bounce_damp"`
}

// Scoring tunes the chain model
type Scoring struct {
	BasePoints      int     `toml:"base_points"`
	PointsPerBall   int     `toml:"points_per_ball"`
	ChainIdleWindow float64 `toml:"chain_idle_window"` // Seconds without a merge before the chain banks
}

// Effects tunes burst and ring spawns
type Effects struct {
	BurstCount        int     `toml:"burst_count"`
	BurstStrength     float64 `toml:"burst_strength"`
	BurstRadius       float64 `toml:"burst_radius"`
	RingCount         int     `toml:"ring_count"`
	RingStartRadius   float64 `toml:"ring_start_radius"`
	RingGrowth        float64 `toml:"ring_growth"`
	ClearBurstPerBall int     `toml:"clear_burst_per_ball"` // Extra particles per cleared ball
}

// Level is the full engine configuration
type Level struct {
	ID                 int          `toml:"id"`
	Path               []vmath.Vec2 `toml:"path"`
	InitialChainLength int          `toml:"initial_chain_length"`
	AvailableColors    int          `toml:"available_colors"`
	ChainSpeed         float64      `toml:"chain_speed"`    // Normalized t per second
	TargetRadius       float64      `toml:"target_radius"`  // Pixels
	TargetSpacing      float64      `toml:"target_spacing"` // Normalized t between chain neighbours
	MatchThreshold     int          `toml:"match_threshold"`
	SpawnInterval      float64      `toml:"spawn_interval"`
	MaxTargets         int          `toml:"max_targets"`
	MaxFrameDelta      float64      `toml:"max_frame_delta"` // 0 disables the cap
	Seed               uint64       `toml:"seed"`

	PlayArea Area    `toml:"play_area"`
	Shooter  Shooter `toml:"shooter"`
	Scoring  Scoring `toml:"scoring"`
	Effects  Effects `toml:"effects"`
}

// Default returns the stock level: four waypoints, twelve balls, four colors
func Default() *Level {
	return &Level{
		ID: 1,
		Path: []vmath.Vec2{
			{X: 40, Y: 120},
			{X: 140, Y: 160},
			{X: 260, Y: 140},
			{X: 340, Y: 220},
		},
		InitialChainLength: 12,
		AvailableColors:    4,
		ChainSpeed:         0.01,
		TargetRadius:       12,
		TargetSpacing:      0.07,
		MatchThreshold:     3,
		SpawnInterval:      0.8,
		MaxTargets:         64,
		MaxFrameDelta:      0.25,
		Seed:               1,

		PlayArea: Area{Width: 400, Height: 700},
		Shooter: Shooter{
			Muzzle:           vmath.Vec2{X: 24, Y: 640},
			MinAngle:         weapon.DefaultMinAngle,
			MaxAngle:         weapon.DefaultMaxAngle,
			MinPower:         weapon.DefaultMinPower,
			MaxPower:         weapon.DefaultMaxPower,
			BaseSpeed:        weapon.DefaultBaseSpeed,
			Cooldown:         weapon.DefaultCooldown,
			ProjectileRadius: 14,
			ProjectileLife:   component.DefaultProjectileLife,
			Bounces:          0,
			BounceDamp:       component.DefaultBounceDamp,
		},
		Scoring: Scoring{
			BasePoints:      10,
			PointsPerBall:   5,
			ChainIdleWindow: 2.5,
		},
		Effects: Effects{
			BurstCount:        vfx.BurstDefaultCount,
			BurstStrength:     vfx.BurstDefaultForce,
			BurstRadius:       vfx.BurstDefaultRadius,
			RingCount:         vfx.RingDefaultCount,
			RingStartRadius:   vfx.RingDefaultStartRadius,
			RingGrowth:        vfx.RingDefaultGrowth,
			ClearBurstPerBall: 4,
		},
	}
}

// WeaponSettings projects the shooter section onto weapon.Settings
func (l *Level) WeaponSettings() weapon.Settings {
	return weapon.Settings{
		MinAngle:       l.Shooter.MinAngle,
		MaxAngle:       l.Shooter.MaxAngle,
		MinPower:       l.Shooter.MinPower,
		MaxPower:       l.Shooter.MaxPower,
		BaseSpeed:      l.Shooter.BaseSpeed,
		Cooldown:       l.Shooter.Cooldown,
		ProjectileLife: l.Shooter.ProjectileLife,
		Bounces:        l.Shooter.Bounces,
	}
}

// Validate reports every problem at once, each wrapped with ErrInvalid
func (l *Level) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	for _, f := range l.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			add("%s must be finite, got %g", f.name, f.value)
		}
	}
	for i, p := range l.Path {
		if !isFinite(p) {
			add("path point %d must be finite, got %v", i, p)
		}
	}
	if !isFinite(l.Shooter.Muzzle) {
		add("shooter muzzle must be finite, got %v", l.Shooter.Muzzle)
	}

	if len(l.Path) < 2 {
		add("path needs at least 2 points, got %d", len(l.Path))
	}
	if l.AvailableColors < 1 || l.AvailableColors > component.ColorKindCount {
		add("available_colors must be in [1,%d], got %d", component.ColorKindCount, l.AvailableColors)
	}
	if l.InitialChainLength < 1 {
		add("initial_chain_length must be positive, got %d", l.InitialChainLength)
	}
	if l.MaxTargets < l.InitialChainLength {
		add("max_targets %d below initial_chain_length %d", l.MaxTargets, l.InitialChainLength)
	}
	if l.ChainSpeed <= 0 {
		add("chain_speed must be positive, got %g", l.ChainSpeed)
	}
	if l.TargetRadius <= 0 {
		add("target_radius must be positive, got %g", l.TargetRadius)
	}
	if l.TargetSpacing <= 0 || l.TargetSpacing > 1 {
		add("target_spacing must be in (0,1], got %g", l.TargetSpacing)
	}
	if l.InitialChainLength > 0 && l.TargetSpacing > 0 && float64(l.InitialChainLength-1)*l.TargetSpacing >= 1 {
		add("initial chain of %d at spacing %g does not fit the path", l.InitialChainLength, l.TargetSpacing)
	}
	if l.MatchThreshold < 2 {
		add("match_threshold must be at least 2, got %d", l.MatchThreshold)
	}
	if l.SpawnInterval <= 0 {
		add("spawn_interval must be positive, got %g", l.SpawnInterval)
	}
	if l.MaxFrameDelta < 0 {
		add("max_frame_delta must not be negative, got %g", l.MaxFrameDelta)
	}
	if l.PlayArea.Width <= 0 || l.PlayArea.Height <= 0 {
		add("play_area must be positive, got %gx%g", l.PlayArea.Width, l.PlayArea.Height)
	}

	s := l.Shooter
	if s.MinAngle > s.MaxAngle {
		add("shooter min_angle %g exceeds max_angle %g", s.MinAngle, s.MaxAngle)
	}
	if s.MinPower > s.MaxPower {
		add("shooter min_power %g exceeds max_power %g", s.MinPower, s.MaxPower)
	}
	if s.BaseSpeed <= 0 {
		add("shooter base_speed must be positive, got %g", s.BaseSpeed)
	}
	if s.Cooldown < 0 {
		add("shooter cooldown must not be negative, got %g", s.Cooldown)
	}
	if s.ProjectileRadius <= 0 {
		add("shooter projectile_radius must be positive, got %g", s.ProjectileRadius)
	}
	if s.ProjectileLife <= 0 {
		add("shooter projectile_life must be positive, got %g", s.ProjectileLife)
	}
	if s.Bounces < 0 {
		add("shooter bounces must not be negative, got %d", s.Bounces)
	}
	if s.BounceDamp <= 0 || s.BounceDamp > 1 {
		add("shooter bounce_damp must be in (0,1], got %g", s.BounceDamp)
	}

	if l.Scoring.BasePoints < 0 || l.Scoring.PointsPerBall < 0 {
		add("scoring points must not be negative")
	}
	if l.Scoring.ChainIdleWindow <= 0 {
		add("scoring chain_idle_window must be positive, got %g", l.Scoring.ChainIdleWindow)
	}

	return errors.Join(errs...)
}

type namedFloat struct {
	name  string
	value float64
}

// floatFields lists every scalar float by its TOML key
func (l *Level) floatFields() []namedFloat {
	return []namedFloat{
		{"chain_speed", l.ChainSpeed},
		{"target_radius", l.TargetRadius},
		{"target_spacing", l.TargetSpacing},
		{"spawn_interval", l.SpawnInterval},
		{"max_frame_delta", l.MaxFrameDelta},
		{"play_area width", l.PlayArea.Width},
		{"play_area height", l.PlayArea.Height},
		{"shooter min_angle", l.Shooter.MinAngle},
		{"shooter max_angle", l.Shooter.MaxAngle},
		{"shooter min_power", l.Shooter.MinPower},
		{"shooter max_power", l.Shooter.MaxPower},
		{"shooter base_speed", l.Shooter.BaseSpeed},
		{"shooter cooldown", l.Shooter.Cooldown},
		{"shooter projectile_radius", l.Shooter.ProjectileRadius},
		{"shooter projectile_life", l.Shooter.ProjectileLife},
		{"shooter bounce_damp", l.Shooter.BounceDamp},
		{"scoring chain_idle_window", l.Scoring.ChainIdleWindow},
		{"effects burst_strength", l.Effects.BurstStrength},
		{"effects burst_radius", l.Effects.BurstRadius},
		{"effects ring_start_radius", l.Effects.RingStartRadius},
		{"effects ring_growth", l.Effects.RingGrowth},
	}
}

func isFinite(v vmath.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
