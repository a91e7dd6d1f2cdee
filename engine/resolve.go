package engine

import (
	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/event"
	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/vfx"
	"github.com/lixenwraith/skullblast/vmath"
)

// Run adjacency tolerance in units of TargetSpacing
const runGapFactor = 1.5

// Extra burst force and ring growth per cleared ball
const clearScalePerBall = 0.1

// resolveCollisions runs every projectile in firing order against path targets head to tail, then free targets
// A projectile is consumed by its first matching hit; mismatches pass through
func (e *Engine) resolveCollisions(now float64) {
	alive := e.projectiles[:0]
	for _, p := range e.projectiles {
		if e.hitPath(&p, now) || e.hitFree(&p, now) {
			continue
		}
		alive = append(alive, p)
	}
	e.projectiles = alive
}

func (e *Engine) hitPath(p *component.Projectile, now float64) bool {
	shape := p.Circle()
	for i := range e.pathTargets {
		t := &e.pathTargets[i]
		if !t.Active || !t.Kind.Matches(p.Kind) || !t.Collides(shape) {
			continue
		}
		e.resolvePathHit(shape, i, now)
		return true
	}
	return false
}

func (e *Engine) hitFree(p *component.Projectile, now float64) bool {
	shape := p.Circle()
	for i := range e.freeTargets {
		t := &e.freeTargets[i]
		if !t.Active || !t.Kind.Matches(p.Kind) || !t.Collides(shape) {
			continue
		}
		impact := physics.ContactPoint(shape, t.Circle())
		e.registerMerge(t, impact, now)
		t.Active = false
		e.spawnEffects(impact, 0)
		return true
	}
	return false
}

// resolvePathHit merges the hit target, or clears its whole run when the run reaches the threshold
func (e *Engine) resolvePathHit(shape physics.Circle, idx int, now float64) {
	t := &e.pathTargets[idx]
	impact := physics.ContactPoint(shape, t.Circle())
	e.registerMerge(t, impact, now)

	lo, hi := e.runBounds(idx)
	runLen := hi - lo + 1
	if runLen < e.cfg.MatchThreshold {
		t.Active = false
		e.spawnEffects(impact, 0)
		return
	}

	e.chain.RegisterClear(e.cfg.Scoring.PointsPerBall, runLen)

	positions := make([]vmath.Vec2, 0, runLen)
	for i := lo; i <= hi; i++ {
		e.pathTargets[i].Active = false
		positions = append(positions, e.pathTargets[i].Position)
	}
	center := vmath.Centroid(positions)
	e.spawnEffects(center, runLen)

	e.events.Push(event.Event{
		Type:     event.EventClear,
		Time:     now,
		Kind:     t.Kind,
		Position: center,
		EntityID: t.ID,
		Count:    runLen,
	})
}

func (e *Engine) registerMerge(t *component.Target, impact vmath.Vec2, now float64) {
	e.chain.RegisterMerge(e.cfg.Scoring.BasePoints)
	e.lastMerge = now
	e.events.Push(event.Event{
		Type:     event.EventMerge,
		Time:     now,
		Kind:     t.Kind,
		Position: impact,
		EntityID: t.ID,
		Count:    e.chain.Count(),
	})
}

// runBounds returns the inclusive index range of the same-kind contiguous run containing idx
func (e *Engine) runBounds(idx int) (lo, hi int) {
	kind := e.pathTargets[idx].Kind
	lo, hi = idx, idx
	for lo > 0 && e.linked(lo-1, lo, kind) {
		lo--
	}
	for hi < len(e.pathTargets)-1 && e.linked(hi, hi+1, kind) {
		hi++
	}
	return lo, hi
}

// linked reports whether neighbours a (headward) and b are both live, of kind, and within the gap limit
func (e *Engine) linked(a, b int, kind component.Kind) bool {
	ta, tb := &e.pathTargets[a], &e.pathTargets[b]
	if !ta.Active || !tb.Active || !ta.Kind.Matches(kind) || !tb.Kind.Matches(kind) {
		return false
	}
	return ta.PathT-tb.PathT <= runGapFactor*e.cfg.TargetSpacing+vmath.Epsilon
}

// spawnEffects adds one burst and one ring at pos; cleared > 0 scales them up
func (e *Engine) spawnEffects(pos vmath.Vec2, cleared int) {
	fx := e.cfg.Effects
	count := fx.BurstCount
	rings := fx.RingCount
	scale := 1.0
	if cleared > 0 {
		count += fx.ClearBurstPerBall * cleared
		rings++
		scale += clearScalePerBall * float64(cleared)
	}

	e.bursts = append(e.bursts, vfx.NewBurst(pos, e.now, count, fx.BurstStrength*scale, fx.BurstRadius))
	e.rings = append(e.rings, vfx.NewRing(pos, e.now, rings, fx.RingStartRadius, fx.RingGrowth*scale))
}
