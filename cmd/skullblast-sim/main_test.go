package main

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/trace"
)

func testScript() script {
	return script{Frames: 100, Dt: 1.0 / 60, FireEvery: 20, SweepRate: 0.5, Power: 0.7}
}

func summarizeRun(t *testing.T, cfg *config.Level, sc script) trace.Summary {
	t.Helper()
	var s trace.Summary
	if _, err := run(cfg, sc, func(snap engine.Snapshot) error {
		s.Add(snap)
		return nil
	}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return s
}

func TestRunFiresOnSchedule(t *testing.T) {
	s := summarizeRun(t, config.Default(), testScript())

	if s.Frames != 100 {
		t.Errorf("Expected 100 frames, got %d", s.Frames)
	}
	if s.Shots != 5 {
		t.Errorf("Expected 5 shots, got %d", s.Shots)
	}
}

func TestRunNeverFires(t *testing.T) {
	sc := testScript()
	sc.FireEvery = 0
	if s := summarizeRun(t, config.Default(), sc); s.Shots != 0 {
		t.Errorf("Expected no shots, got %d", s.Shots)
	}
}

func TestRunDeterministic(t *testing.T) {
	sc := testScript()
	sc.Frames = 1200

	a := summarizeRun(t, config.Default(), sc)
	b := summarizeRun(t, config.Default(), sc)
	if a != b {
		t.Errorf("Expected identical runs, got %+v and %+v", a, b)
	}
}

func TestRunStopsOnRecordError(t *testing.T) {
	sentinel := errors.New("disk full")
	calls := 0
	_, err := run(config.Default(), testScript(), func(engine.Snapshot) error {
		calls++
		if calls == 3 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected record error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected run to stop after 3 frames, got %d", calls)
	}
}

func TestRunRejectsInvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.MatchThreshold = 1
	if _, err := run(cfg, testScript(), nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestSummarizeFile(t *testing.T) {
	cfg := config.Default()
	eng, err := engine.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.trace")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := bufio.NewWriter(f)
	rec, err := trace.NewRecorder(w, trace.NewHeader(eng))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := run(cfg, testScript(), rec.Record); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var out bytes.Buffer
	if err := summarizeFile(path, &out); err != nil {
		t.Fatalf("summarizeFile failed: %v", err)
	}
	for _, want := range []string{"level 1 seed 1", "frames:       100", "shots:        5"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestSummarizeMissingFile(t *testing.T) {
	err := summarizeFile(filepath.Join(t.TempDir(), "nope"), &bytes.Buffer{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
