package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/event"
	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/score"
	"github.com/lixenwraith/skullblast/vfx"
	"github.com/lixenwraith/skullblast/vmath"
	"github.com/lixenwraith/skullblast/weapon"
)

type ammo struct {
	current component.Kind
	next    component.Kind
}

// Engine is the per-frame orchestrator: motion, bounds, collisions, scoring and effects
// Not safe for concurrent use; the host loop serializes every call
type Engine struct {
	cfg     config.Level
	path    physics.Path
	area    physics.Area
	shooter *weapon.Shooter
	chain   score.Chain
	events  *event.Queue
	rng     *vmath.FastRand

	pathTargets []component.Target // Head to tail, PathT descending
	freeTargets []component.Target
	projectiles []component.Projectile // Firing order
	bursts      []*vfx.Burst
	rings       []*vfx.Ring

	state      State
	now        float64 // Time of the last processed step
	lastUpdate float64
	lastMerge  float64
	lastSpawn  float64

	nextID   component.Entity
	ammo     ammo
	banked   int
	breaches int
}

// New validates cfg and builds a stopped engine
// The engine keeps its own copy of cfg
func New(cfg *config.Level) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine: %w: nil level", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	c := *cfg
	c.Path = slices.Clone(cfg.Path)

	e := &Engine{
		cfg:    c,
		path:   physics.NewPath(c.Path),
		area:   physics.Area{Width: c.PlayArea.Width, Height: c.PlayArea.Height},
		events: event.NewQueue(),
		state:  StateStopped,
	}
	e.reset()
	return e, nil
}

// reset restores the seeded initial condition without touching lifecycle state
func (e *Engine) reset() {
	e.shooter = weapon.NewShooter(e.cfg.WeaponSettings(), e.cfg.Shooter.Muzzle)
	e.rng = vmath.NewFastRand(e.cfg.Seed)
	e.chain.Reset()
	e.events.Clear()

	e.pathTargets = e.pathTargets[:0]
	e.freeTargets = e.freeTargets[:0]
	e.projectiles = e.projectiles[:0]
	e.bursts = nil
	e.rings = nil

	e.nextID = 0
	e.banked = 0
	e.breaches = 0
	e.ammo = ammo{current: e.randomColor(), next: e.randomColor()}
}

// Start clears the field, seeds the initial chain and begins running at now
func (e *Engine) Start(now float64) {
	e.reset()
	e.seedChain()

	e.now = now
	e.lastUpdate = now
	e.lastMerge = now
	e.lastSpawn = now
	e.state = StateRunning

	e.events.Push(event.Event{Type: event.EventStart, Time: now})
}

// Stop freezes the simulation; state is kept until the next Start
func (e *Engine) Stop() {
	e.state = StateStopped
}

// Pause freezes a running simulation
func (e *Engine) Pause() {
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Resume continues a paused simulation at now
// Every timer is shifted by the paused interval so the pause produces no motion, expiry or chain decay
func (e *Engine) Resume(now float64) {
	if e.state != StatePaused {
		return
	}
	if offset := now - e.lastUpdate; offset > 0 {
		e.shiftTimers(offset, now)
	}
	e.lastUpdate = now
	e.now = now
	e.state = StateRunning
}

// shiftTimers moves every running timer forward by offset
// Projectiles fired after since keep their launch time
func (e *Engine) shiftTimers(offset, since float64) {
	e.lastMerge += offset
	e.lastSpawn += offset
	for i := range e.projectiles {
		if e.projectiles[i].BornAt <= since {
			e.projectiles[i].BornAt += offset
		}
	}
}

// launchPending re-anchors shots fired since prev so they fly and age only
// for the part of the frame after their launch, at most dt
func (e *Engine) launchPending(prev, now, dt float64) {
	for i := range e.projectiles {
		p := &e.projectiles[i]
		if p.BornAt > prev {
			p.BornAt = now - vmath.Clamp(now-p.BornAt, 0, dt)
		}
	}
}

// State returns the lifecycle phase
func (e *Engine) State() State {
	return e.state
}

// Step advances the simulation to now and returns the frame snapshot with its events
// Outside Running the snapshot is returned unchanged apart from queued events
// Time beyond MaxFrameDelta is skipped like a pause: no motion, expiry, spawn or chain decay
func (e *Engine) Step(now float64) Snapshot {
	if e.state != StateRunning {
		return e.snapshot(e.events.Consume())
	}

	prev := e.lastUpdate
	raw := now - prev
	dt := max(raw, 0)
	if e.cfg.MaxFrameDelta > 0 && dt > e.cfg.MaxFrameDelta {
		dt = e.cfg.MaxFrameDelta
	}
	if skipped := raw - dt; skipped > 0 {
		e.shiftTimers(skipped, prev)
	}
	e.launchPending(prev, now, dt)
	e.lastUpdate = now
	e.now = now

	e.advanceTargets(now, dt)
	e.advanceProjectiles(now, dt)
	e.resolveCollisions(now)
	e.purgeTargets()
	e.advanceEffects(dt)
	e.checkChainIdle(now)
	e.spawn(now)

	return e.snapshot(e.events.Consume())
}

// Snapshot returns the current view without stepping or draining events
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot(nil)
}

// Fire shoots the loaded ammo kind; the shot event is returned and also queued for the next snapshot
// Fails silently when not running or cooling down
func (e *Engine) Fire(now float64) (event.Event, bool) {
	if e.state != StateRunning {
		return event.Event{}, false
	}
	p, ok := e.shooter.Shoot(e.ammo.current, now, e.cfg.Shooter.ProjectileRadius)
	if !ok {
		return event.Event{}, false
	}
	p.ID = e.allocID()
	e.projectiles = append(e.projectiles, p)

	e.ammo.current = e.ammo.next
	e.ammo.next = e.randomColor()

	ev := event.Event{
		Type:     event.EventShot,
		Time:     now,
		Kind:     p.Kind,
		Position: p.Position,
		EntityID: p.ID,
	}
	e.events.Push(ev)
	return ev, true
}

// Aim sets the shooter angle in radians, clamped
func (e *Engine) Aim(angle float64) {
	e.shooter.SetAngle(angle)
}

// AdjustAim rotates the shooter by delta radians, clamped
func (e *Engine) AdjustAim(delta float64) {
	e.shooter.AdjustAngle(delta)
}

// SetPower sets the normalized shot power, clamped
func (e *Engine) SetPower(p float64) {
	e.shooter.SetPowerNormalized(p)
}

// SwapAmmo exchanges the loaded and queued kinds
func (e *Engine) SwapAmmo() {
	e.ammo.current, e.ammo.next = e.ammo.next, e.ammo.current
}

// AddFreeTarget adds a free-flight target and returns its id
func (e *Engine) AddFreeTarget(kind component.Kind, pos, vel vmath.Vec2, radius float64) component.Entity {
	t := component.NewTarget(e.allocID(), kind, pos, radius)
	t.Velocity = vel
	e.freeTargets = append(e.freeTargets, t)
	return t.ID
}

// Path returns a copy of the level waypoints
func (e *Engine) Path() []vmath.Vec2 {
	return e.path.Points()
}

// Area returns the play-area rectangle
func (e *Engine) Area() physics.Area {
	return e.area
}

// Level returns a copy of the engine's configuration
func (e *Engine) Level() config.Level {
	c := e.cfg
	c.Path = slices.Clone(e.cfg.Path)
	return c
}

func (e *Engine) allocID() component.Entity {
	e.nextID++
	return e.nextID
}

func (e *Engine) randomColor() component.Kind {
	return component.ColorKind(e.rng.Intn(e.cfg.AvailableColors))
}

// seedChain lays the initial chain with the tail at PathT 0
func (e *Engine) seedChain() {
	n := e.cfg.InitialChainLength
	for i := 0; i < n; i++ {
		t := float64(n-1-i) * e.cfg.TargetSpacing
		e.pathTargets = append(e.pathTargets, e.newPathTarget(t))
	}
}

func (e *Engine) newPathTarget(pathT float64) component.Target {
	t := component.NewTarget(e.allocID(), e.randomColor(), e.path.PositionAt(pathT), e.cfg.TargetRadius)
	t.PathT = pathT
	return t
}

// advanceTargets moves path and free targets, flagging breaches and escapes for purge
func (e *Engine) advanceTargets(now, dt float64) {
	for i := range e.pathTargets {
		t := &e.pathTargets[i]
		t.MoveAlongPath(e.path, e.cfg.ChainSpeed, dt)
		if t.Active && t.AtPathEnd() {
			t.Active = false
			e.breaches++
			e.events.Push(event.Event{
				Type:     event.EventBreach,
				Time:     now,
				Kind:     t.Kind,
				Position: t.Position,
				EntityID: t.ID,
			})
		}
	}

	for i := range e.freeTargets {
		t := &e.freeTargets[i]
		t.Update(dt)
		if e.area.CircleOutside(t.Circle()) {
			t.Active = false
		}
	}
}

// advanceProjectiles integrates, bounces or drops at edges, and drops expired projectiles
func (e *Engine) advanceProjectiles(now, dt float64) {
	alive := e.projectiles[:0]
	for _, p := range e.projectiles {
		p.Step(vmath.Clamp(now-p.BornAt, 0, dt))

		if h, v := e.area.CrossedEdges(p.Position, p.Velocity); h || v {
			if !p.CanBounce() {
				continue
			}
			p.Bounce(h, v, e.cfg.Shooter.BounceDamp)
			p.Position = e.area.ClampInto(p.Position)
		}

		if p.IsExpired(now) {
			continue
		}
		alive = append(alive, p)
	}
	e.projectiles = alive
}

// advanceEffects steps every burst and ring and drops the empty ones
func (e *Engine) advanceEffects(dt float64) {
	for _, b := range e.bursts {
		b.Step(dt)
	}
	e.bursts = slices.DeleteFunc(e.bursts, func(b *vfx.Burst) bool { return !b.IsAlive() })

	for _, r := range e.rings {
		r.Step(dt)
	}
	e.rings = slices.DeleteFunc(e.rings, func(r *vfx.Ring) bool { return !r.IsAlive() })
}

// purgeTargets drops consumed, breached and escaped targets
func (e *Engine) purgeTargets() {
	inactive := func(t component.Target) bool { return !t.Active }
	e.pathTargets = slices.DeleteFunc(e.pathTargets, inactive)
	e.freeTargets = slices.DeleteFunc(e.freeTargets, inactive)
}

// checkChainIdle banks and resets the chain once no merge happened within the idle window
func (e *Engine) checkChainIdle(now float64) {
	if !e.chain.IsActive() || now-e.lastMerge < e.cfg.Scoring.ChainIdleWindow {
		return
	}
	count := e.chain.Count()
	e.banked += e.chain.Score()
	e.chain.Reset()
	e.events.Push(event.Event{
		Type:  event.EventChainReset,
		Time:  now,
		Count: count,
	})
}

// spawn feeds a new target onto the path once the tail has cleared one spacing
func (e *Engine) spawn(now float64) {
	if len(e.pathTargets) >= e.cfg.MaxTargets {
		return
	}
	if now-e.lastSpawn < e.cfg.SpawnInterval {
		return
	}
	if n := len(e.pathTargets); n > 0 && e.pathTargets[n-1].PathT < e.cfg.TargetSpacing {
		return
	}
	e.pathTargets = append(e.pathTargets, e.newPathTarget(0))
	e.lastSpawn = now
}
