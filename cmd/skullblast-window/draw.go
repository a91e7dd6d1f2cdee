package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/engine"
)

var (
	colBackground = color.NRGBA{26, 27, 38, 255}
	colHUD        = color.NRGBA{36, 40, 59, 255}
	colPath       = color.NRGBA{70, 72, 96, 255}
	colPathEnd    = color.NRGBA{200, 50, 50, 255}
	colAim        = color.NRGBA{180, 180, 180, 160}
	colBurst      = color.NRGBA{255, 255, 200, 255}
	colRing       = color.NRGBA{140, 190, 255, 255}
	colText       = color.NRGBA{220, 220, 230, 255}
	colOverlay    = color.NRGBA{0, 0, 0, 140}
)

var kindPalette = map[component.Kind]color.NRGBA{
	component.KindRed:    {255, 80, 80, 255},
	component.KindBlue:   {100, 150, 255, 255},
	component.KindGreen:  {0, 200, 0, 255},
	component.KindYellow: {255, 255, 0, 255},
	component.KindPurple: {180, 90, 220, 255},
	component.KindSkull:  {230, 230, 230, 255},
	component.KindFire:   {255, 120, 0, 255},
}

func kindColor(k component.Kind) color.NRGBA {
	if c, ok := kindPalette[k]; ok {
		return c
	}
	return color.NRGBA{255, 255, 255, 255}
}

// withAlpha scales a color's alpha channel by a in [0,1]
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * math.Max(0, math.Min(1, a)))
	return c
}

// angleTo returns the heading from (x0,y0) toward (x1,y1)
func angleTo(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0)
}

// Draw renders the last snapshot; world y is shifted below the HUD strip
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	s := g.last
	oy := float32(hudHeight)

	for i := 1; i < len(g.path); i++ {
		a, b := g.path[i-1], g.path[i]
		vector.StrokeLine(screen, a[0], a[1]+oy, b[0], b[1]+oy, 3, colPath, true)
	}
	if n := len(g.path); n > 0 {
		end := g.path[n-1]
		vector.StrokeCircle(screen, end[0], end[1]+oy, 10, 2, colPathEnd, true)
	}

	for _, r := range s.Rings {
		for _, w := range r.Particles {
			vector.StrokeCircle(screen, float32(w.Position.X), float32(w.Position.Y)+oy,
				float32(w.Radius), float32(math.Max(w.Thickness, 1)), withAlpha(colRing, w.Alpha), true)
		}
	}

	for _, t := range s.Targets {
		vector.DrawFilledCircle(screen, float32(t.Position.X), float32(t.Position.Y)+oy,
			float32(t.Radius), kindColor(t.Kind), true)
	}

	for _, p := range s.Projectiles {
		x, y := float32(p.Position.X), float32(p.Position.Y)+oy
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), kindColor(p.Kind), true)
		vector.StrokeCircle(screen, x, y, float32(p.Radius), 1.5, colText, true)
	}

	for _, b := range s.Bursts {
		for _, p := range b.Particles {
			vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y)+oy,
				float32(p.Radius), withAlpha(colBurst, p.Alpha), true)
		}
	}

	g.drawShooter(screen, s, oy)
	g.drawHUD(screen, s)

	if s.State != engine.StateRunning {
		w, h := g.Layout(0, 0)
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colOverlay, false)
		label := "PAUSED"
		if s.State == engine.StateStopped {
			label = "STOPPED"
		}
		text.Draw(screen, label, basicfont.Face7x13, w/2-len(label)*7/2, h/2, colText)
	}
}

func (g *Game) drawShooter(screen *ebiten.Image, s engine.Snapshot, oy float32) {
	mx, my := s.Aim.Muzzle.X, s.Aim.Muzzle.Y
	reach := 60 + 140*s.Aim.Power
	ex := mx + math.Cos(s.Aim.Angle)*reach
	ey := my + math.Sin(s.Aim.Angle)*reach
	vector.StrokeLine(screen, float32(mx), float32(my)+oy, float32(ex), float32(ey)+oy, 2, colAim, true)

	vector.DrawFilledCircle(screen, float32(mx), float32(my)+oy, 14, kindColor(s.Ammo.Current), true)
	vector.DrawFilledCircle(screen, float32(mx)+22, float32(my)+oy+14, 7, kindColor(s.Ammo.Next), true)
}

func (g *Game) drawHUD(screen *ebiten.Image, s engine.Snapshot) {
	w, _ := g.Layout(0, 0)
	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, colHUD, false)

	line := fmt.Sprintf("SCORE %d  CHAIN %d x%d  BREACH %d", s.Total, s.ChainCount, s.ChainMultiplier, s.Breaches)
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, colText)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps %.2fms", ebiten.ActualFPS(), g.metrics.StepMillis()), w-130, 4)
	if g.feedback.IsMuted() {
		ebitenutil.DebugPrintAt(screen, "muted", w-170, 4)
	}
}
