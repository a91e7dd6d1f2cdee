package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skullblast/audio"
	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/render"
	"github.com/lixenwraith/skullblast/status"
	"github.com/lixenwraith/skullblast/trace"
)

const (
	logDir      = "logs"
	logFileName = "skullblast.log"
	maxLogSize  = 10 * 1024 * 1024

	frameInterval = 16 * time.Millisecond
	aimStep       = 0.04 // Radians per key press
	powerStep     = 0.05
)

var (
	levelFlag  = flag.String("level", "", "Level TOML file (overrides SKULLBLAST_LEVEL)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+filepath.Join(logDir, logFileName))
	recordFlag = flag.String("record", "", "Record a msgpack trace of the session to this file")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

// setupLogging routes the standard logger to a file in debug mode, discards otherwise
// An existing log over maxLogSize is rotated aside with a timestamp suffix
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("skullblast-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Lmicroseconds | log.Lshortfile)
	return f
}

// loadLevel resolves the level file from flag then environment, falling back to the built-in level
func loadLevel(flagPath string) (*config.Level, error) {
	path := flagPath
	if path == "" {
		path = config.LevelPath("")
	}

	var cfg *config.Level
	if path == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// game owns one terminal session
type game struct {
	screen   tcell.Screen
	engine   *engine.Engine
	clock    *engine.SimClock
	renderer *render.TerminalRenderer
	feedback *audio.Feedback
	recorder *trace.Recorder
	metrics  *status.Session
	last     engine.Snapshot
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadLevel(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create engine: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: the deferred Fini below restores the terminal first
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSKULLBLAST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	g := &game{
		screen:   screen,
		engine:   eng,
		clock:    engine.NewSimClock(engine.NewMonotonicTimeProvider()),
		renderer: render.NewTerminalRenderer(screen, eng.Area(), eng.Path()),
		feedback: audio.NewFeedback(audio.LoadConfig()),
		metrics:  status.NewSession(nil),
	}

	if err := g.feedback.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	}
	defer g.feedback.Cleanup()
	if *muteFlag && !g.feedback.IsMuted() {
		g.feedback.ToggleMute()
	}

	if *recordFlag != "" {
		f, err := os.Create(*recordFlag)
		if err != nil {
			log.Printf("Trace disabled: %v", err)
		} else {
			w := bufio.NewWriter(f)
			defer func() {
				if err := w.Flush(); err != nil {
					log.Printf("Trace flush failed: %v", err)
				}
				f.Close()
				if g.recorder != nil {
					log.Printf("Trace written: %d frames to %s", g.recorder.Frames(), *recordFlag)
				}
			}()
			if g.recorder, err = trace.NewRecorder(w, trace.NewHeader(eng)); err != nil {
				log.Printf("Trace disabled: %v", err)
			}
		}
	}

	log.Printf("Starting level %d seed %d", cfg.ID, cfg.Seed)
	g.run()

	played, dropped := g.feedback.Stats()
	log.Printf("Session over: total %d, breaches %d, sounds %d played %d dropped",
		g.last.Total, g.last.Breaches, played, dropped)
	if _, err := g.metrics.Registry().WriteTo(log.Writer()); err != nil {
		log.Printf("Metrics dump failed: %v", err)
	}
}

// run drives input, stepping and drawing until quit
func (g *game) run() {
	eventChan := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	g.engine.Start(g.clock.Now())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// frame advances the engine once and presents the result
func (g *game) frame() {
	start := time.Now()
	snap := g.engine.Step(g.clock.Now())
	g.metrics.Observe(snap, time.Since(start))
	g.last = snap

	g.feedback.Handle(snap.Events)
	for _, ev := range snap.Events {
		log.Printf("%s kind=%s count=%d at %.3f", ev.Type, ev.Kind, ev.Count, ev.Time)
	}

	if g.recorder != nil {
		if err := g.recorder.Record(snap); err != nil {
			log.Printf("Trace record failed, stopping trace: %v", err)
			g.recorder = nil
		}
	}

	g.renderer.Draw(snap)
}

// handleEvent applies one input event, returns false to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return true
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	now := g.clock.Now()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.engine.AdjustAim(-aimStep)
	case tcell.KeyRight:
		g.engine.AdjustAim(aimStep)
	case tcell.KeyUp:
		g.engine.SetPower(g.engine.Snapshot().Aim.Power + powerStep)
	case tcell.KeyDown:
		g.engine.SetPower(g.engine.Snapshot().Aim.Power - powerStep)
	case tcell.KeyTab:
		g.engine.SwapAmmo()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			g.engine.Fire(now)
		case 'p':
			g.togglePause(now)
		case 'm':
			g.feedback.ToggleMute()
		case 'r':
			g.engine.Stop()
			g.engine.Start(now)
		}
	}
	return true
}

func (g *game) togglePause(now float64) {
	switch g.engine.State() {
	case engine.StateRunning:
		g.engine.Pause()
	case engine.StatePaused:
		g.engine.Resume(now)
	}
}
