package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/trace"
)

// script describes a deterministic input pattern
type script struct {
	Frames    int
	Dt        float64 // Seconds per frame
	FireEvery int     // Frames between shots, 0 never fires
	SweepRate float64 // Aim oscillations per second
	Power     float64
}

// run drives a fresh engine through the script, handing every frame to record
func run(cfg *config.Level, sc script, record func(engine.Snapshot) error) (engine.Snapshot, error) {
	eng, err := engine.New(cfg)
	if err != nil {
		return engine.Snapshot{}, err
	}

	lvl := eng.Level()
	mid := (lvl.Shooter.MinAngle + lvl.Shooter.MaxAngle) / 2
	half := (lvl.Shooter.MaxAngle - lvl.Shooter.MinAngle) / 2

	eng.Start(0)
	eng.SetPower(sc.Power)

	var last engine.Snapshot
	for i := 1; i <= sc.Frames; i++ {
		now := float64(i) * sc.Dt

		if sc.SweepRate > 0 {
			eng.Aim(mid + half*math.Sin(2*math.Pi*sc.SweepRate*now))
		}
		if sc.FireEvery > 0 && i%sc.FireEvery == 0 {
			eng.Fire(now)
		}

		last = eng.Step(now)
		if record != nil {
			if err := record(last); err != nil {
				return last, err
			}
		}
	}
	return last, nil
}

func printSummary(w io.Writer, s trace.Summary) {
	fmt.Fprintf(w, "frames:       %d\n", s.Frames)
	fmt.Fprintf(w, "shots:        %d\n", s.Shots)
	fmt.Fprintf(w, "merges:       %d\n", s.Merges)
	fmt.Fprintf(w, "clears:       %d (%d balls)\n", s.Clears, s.Cleared)
	fmt.Fprintf(w, "chain resets: %d\n", s.ChainResets)
	fmt.Fprintf(w, "breaches:     %d\n", s.Breaches)
	fmt.Fprintf(w, "best chain:   %d\n", s.BestChain)
	fmt.Fprintf(w, "final total:  %d\n", s.FinalTotal)
}

// summarizeFile reads a recorded trace and prints its summary
func summarizeFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, frames, err := trace.ReadAll(bufio.NewReader(f))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "level %d seed %d, %d waypoints, area %.0fx%.0f\n", h.LevelID, h.Seed, len(h.Path), h.Width, h.Height)
	printSummary(w, trace.Summarize(frames))
	return nil
}

func main() {
	var (
		levelPath = flag.String("level", "", "Level TOML file (overrides SKULLBLAST_LEVEL)")
		frames    = flag.Int("frames", 3600, "Frames to simulate")
		fps       = flag.Float64("fps", 60, "Simulated frames per second")
		fireEvery = flag.Int("fire-every", 20, "Frames between shots (0 disables firing)")
		sweep     = flag.Float64("sweep", 0.25, "Aim sweep frequency in Hz (0 holds aim)")
		power     = flag.Float64("power", 0.7, "Shot power")
		out       = flag.String("out", "", "Write the msgpack trace to this file")
		read      = flag.String("read", "", "Summarize an existing trace file and exit")
		verbose   = flag.Bool("v", false, "Log progress to stderr")
	)
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *read != "" {
		if err := summarizeFile(*read, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read trace: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := *levelPath
	if path == "" {
		path = config.LevelPath("")
	}
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply environment: %v\n", err)
		os.Exit(1)
	}

	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "fps must be positive")
		os.Exit(2)
	}
	sc := script{
		Frames:    *frames,
		Dt:        1 / *fps,
		FireEvery: *fireEvery,
		SweepRate: *sweep,
		Power:     *power,
	}

	// Without -out the trace is still encoded, into io.Discard
	sink := io.Discard
	var file *os.File
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create trace: %v\n", err)
			os.Exit(1)
		}
		file = f
		sink = f
	}
	buf := bufio.NewWriter(sink)

	probe, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid level: %v\n", err)
		os.Exit(1)
	}
	rec, err := trace.NewRecorder(buf, trace.NewHeader(probe))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start trace: %v\n", err)
		os.Exit(1)
	}

	var summary trace.Summary
	log.Printf("Simulating %d frames at %.0f fps, seed %d", sc.Frames, *fps, cfg.Seed)
	last, err := run(cfg, sc, func(snap engine.Snapshot) error {
		summary.Add(snap)
		return rec.Record(snap)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	if err := buf.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush trace: %v\n", err)
		os.Exit(1)
	}
	if file != nil {
		file.Close()
		log.Printf("Trace written: %d frames to %s", rec.Frames(), *out)
	}

	log.Printf("Final state %s at t=%.2f", last.State, last.Time)
	printSummary(os.Stdout, summary)
}
