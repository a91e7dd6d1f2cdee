package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/skullblast/audio"
	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/status"
)

const (
	hudHeight = 24
	aimRate   = 1.6 // Radians per second while an arrow is held
	powerRate = 0.8 // Power per second while an arrow is held
)

var (
	levelFlag = flag.String("level", "", "Level TOML file (overrides SKULLBLAST_LEVEL)")
	scaleFlag = flag.Float64("scale", 1, "Window scale factor")
)

// Game adapts the engine to ebiten's update/draw loop
type Game struct {
	engine   *engine.Engine
	clock    *engine.SimClock
	feedback *audio.Feedback
	metrics  *status.Session
	area     struct{ w, h int }
	path     [][2]float32
	last     engine.Snapshot
	lastTick float64
}

// NewGame creates and starts a session
func NewGame(cfg *config.Level) (*Game, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		engine:   eng,
		clock:    engine.NewSimClock(engine.NewMonotonicTimeProvider()),
		feedback: audio.NewFeedback(audio.LoadConfig()),
		metrics:  status.NewSession(nil),
	}
	area := eng.Area()
	g.area.w, g.area.h = int(area.Width), int(area.Height)
	for _, p := range eng.Path() {
		g.path = append(g.path, [2]float32{float32(p.X), float32(p.Y)})
	}

	if err := g.feedback.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	}

	now := g.clock.Now()
	g.engine.Start(now)
	g.lastTick = now
	return g, nil
}

// Update reads input and steps the engine once per tick
func (g *Game) Update() error {
	now := g.clock.Now()
	dt := now - g.lastTick
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.engine.AdjustAim(-aimRate * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.engine.AdjustAim(aimRate * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.engine.SetPower(g.last.Aim.Power + powerRate*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.engine.SetPower(g.last.Aim.Power - powerRate*dt)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeySpace:
			g.engine.Fire(now)
		case ebiten.KeyTab:
			g.engine.SwapAmmo()
		case ebiten.KeyM:
			g.feedback.ToggleMute()
		case ebiten.KeyR:
			g.engine.Stop()
			g.engine.Start(now)
		case ebiten.KeyP:
			switch g.engine.State() {
			case engine.StateRunning:
				g.engine.Pause()
			case engine.StatePaused:
				g.engine.Resume(now)
			}
		}
	}

	// Mouse aims at the cursor and fires on click
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		muzzle := g.last.Aim.Muzzle
		g.engine.Aim(angleTo(muzzle.X, muzzle.Y, float64(mx), float64(my-hudHeight)))
		g.engine.Fire(now)
	}

	start := time.Now()
	g.last = g.engine.Step(now)
	g.metrics.Observe(g.last, time.Since(start))
	g.feedback.Handle(g.last.Events)
	for _, ev := range g.last.Events {
		log.Printf("%s kind=%s count=%d at %.3f", ev.Type, ev.Kind, ev.Count, ev.Time)
	}
	return nil
}

// Layout keeps a fixed logical size: the play area plus the HUD strip
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.area.w, g.area.h + hudHeight
}

func main() {
	flag.Parse()

	path := *levelFlag
	if path == "" {
		path = config.LevelPath("")
	}
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.feedback.Cleanup()

	w, h := g.Layout(0, 0)
	scale := *scaleFlag
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("Skullblast")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	if _, werr := g.metrics.Registry().WriteTo(log.Writer()); werr != nil {
		log.Printf("Metrics dump failed: %v", werr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game exited with error: %v", err)
		g.feedback.Cleanup()
		os.Exit(1)
	}
}
