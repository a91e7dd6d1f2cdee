package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/physics"
	"github.com/lixenwraith/skullblast/vmath"
)

const (
	pathSamples   = 400 // Track sample count across [0,1]
	aimDots       = 8
	aimDotSpacing = 30.0 // World units between aim dots at full power
	ringSamples   = 48
)

// TerminalRenderer draws engine snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	area   physics.Area
	path   physics.Path
	track  []vmath.Vec2
}

// NewTerminalRenderer creates a renderer for a fixed level geometry
func NewTerminalRenderer(screen tcell.Screen, area physics.Area, waypoints []vmath.Vec2) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		area:   area,
		path:   physics.NewPath(waypoints),
	}
	if !r.path.IsDegenerate() {
		r.track = make([]vmath.Vec2, 0, pathSamples+1)
		for i := 0; i <= pathSamples; i++ {
			r.track = append(r.track, r.path.PositionAt(float64(i)/pathSamples))
		}
	}
	return r
}

// Viewport returns the current mapping for the screen size
func (r *TerminalRenderer) Viewport() Viewport {
	w, h := r.screen.Size()
	return NewViewport(r.area, w, h)
}

// Draw renders one frame and shows it
func (r *TerminalRenderer) Draw(s engine.Snapshot) {
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(bg)

	vp := r.Viewport()

	r.drawTrack(vp, bg)
	r.drawRings(vp, s, bg)
	r.drawTargets(vp, s, bg)
	r.drawProjectiles(vp, s, bg)
	r.drawBursts(vp, s, bg)
	r.drawAim(vp, s, bg)
	r.drawHUD(s)

	if s.State != engine.StateRunning {
		r.drawOverlay(s.State)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	w, h := r.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) plot(vp Viewport, p vmath.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := vp.ToCell(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawTrack(vp Viewport, bg tcell.Style) {
	if len(r.track) == 0 {
		return
	}
	style := bg.Foreground(RgbPath)
	for _, p := range r.track {
		r.plot(vp, p, '·', style)
	}
	r.plot(vp, r.track[len(r.track)-1], '✖', bg.Foreground(RgbPathEnd))
}

func (r *TerminalRenderer) drawTargets(vp Viewport, s engine.Snapshot, bg tcell.Style) {
	for _, t := range s.Targets {
		r.plot(vp, t.Position, KindGlyph(t.Kind), bg.Foreground(KindColor(t.Kind)))
	}
}

func (r *TerminalRenderer) drawProjectiles(vp Viewport, s engine.Snapshot, bg tcell.Style) {
	for _, p := range s.Projectiles {
		r.plot(vp, p.Position, '◆', bg.Foreground(KindColor(p.Kind)).Bold(true))
	}
}

func (r *TerminalRenderer) drawBursts(vp Viewport, s engine.Snapshot, bg tcell.Style) {
	for _, b := range s.Bursts {
		for _, p := range b.Particles {
			ch := '∙'
			if p.Alpha > 0.5 {
				ch = '*'
			}
			r.plot(vp, p.Position, ch, bg.Foreground(Fade(RgbBurst, p.Alpha)))
		}
	}
}

// drawRings samples each wave circumference; cell aspect stretches it back to a circle
func (r *TerminalRenderer) drawRings(vp Viewport, s engine.Snapshot, bg tcell.Style) {
	for _, ring := range s.Rings {
		for _, w := range ring.Particles {
			style := bg.Foreground(Fade(RgbRing, w.Alpha))
			for i := 0; i < ringSamples; i++ {
				a := 2 * math.Pi * float64(i) / ringSamples
				p := w.Position.Add(vmath.FromAngle(a).Scale(w.Radius))
				r.plot(vp, p, '○', style)
			}
		}
	}
}

func (r *TerminalRenderer) drawAim(vp Viewport, s engine.Snapshot, bg tcell.Style) {
	dir := vmath.FromAngle(s.Aim.Angle)
	step := aimDotSpacing * s.Aim.Power
	style := bg.Foreground(RgbAim)
	for i := 1; i <= aimDots; i++ {
		r.plot(vp, s.Aim.Muzzle.Add(dir.Scale(step*float64(i))), '.', style)
	}
	r.plot(vp, s.Aim.Muzzle, KindGlyph(s.Ammo.Current), bg.Foreground(KindColor(s.Ammo.Current)).Bold(true))
}

// drawHUD renders the status bar on the top row
func (r *TerminalRenderer) drawHUD(s engine.Snapshot) {
	w, _ := r.screen.Size()
	barBg := RgbStatusBg
	if s.ChainCount > 0 {
		barBg = RgbChainBg
	}
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(barBg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	text := fmt.Sprintf(" SCORE %d  CHAIN %d x%d  BREACH %d  AMMO ", s.Total, s.ChainCount, s.ChainMultiplier, s.Breaches)
	x := r.drawText(0, 0, text, style)
	x = r.drawText(x, 0, string(KindGlyph(s.Ammo.Current)), style.Foreground(KindColor(s.Ammo.Current)).Bold(true))
	x = r.drawText(x, 0, " ", style)
	r.drawText(x, 0, string(KindGlyph(s.Ammo.Next)), style.Foreground(KindColor(s.Ammo.Next)))
}

func (r *TerminalRenderer) drawOverlay(state engine.State) {
	w, h := r.screen.Size()
	text := " PAUSED "
	if state == engine.StateStopped {
		text = " STOPPED "
	}
	x := (w - len(text)) / 2
	y := HUDRows + (h-HUDRows)/2
	r.drawText(max(x, 0), y, text, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbPausedBg).Bold(true))
}

// drawText writes text left to right, returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
