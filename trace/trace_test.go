package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/config"
	"github.com/lixenwraith/skullblast/engine"
	"github.com/lixenwraith/skullblast/event"
	"github.com/lixenwraith/skullblast/vmath"
)

// TestRecordedRunRoundTrip records a short run and reads it back
func TestRecordedRunRoundTrip(t *testing.T) {
	e, err := engine.New(config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.Start(0)
	e.AddFreeTarget(component.KindRed, vmath.V(200, 400), vmath.Vec2{}, 16)

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, NewHeader(e))
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	var recorded []engine.Snapshot
	for i := 0; i <= 30; i++ {
		now := float64(i) / 30
		if i == 5 {
			e.Fire(now)
		}
		s := e.Step(now)
		recorded = append(recorded, s)
		if err := rec.Record(s); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
	}
	if rec.Frames() != len(recorded) {
		t.Errorf("Expected %d frames written, got %d", len(recorded), rec.Frames())
	}

	h, frames, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if h.Version != FormatVersion || h.Seed != 1 || len(h.Path) != 4 || h.Width != 400 {
		t.Errorf("Unexpected header %+v", h)
	}
	if len(frames) != len(recorded) {
		t.Fatalf("Expected %d frames, got %d", len(recorded), len(frames))
	}

	for i, f := range frames {
		want := recorded[i]
		got := f.Snapshot
		if f.Index != i {
			t.Errorf("Frame %d: expected index %d, got %d", i, i, f.Index)
		}
		if got.Time != want.Time || got.State != want.State || got.Total != want.Total {
			t.Errorf("Frame %d: expected time/state/total %v/%v/%d, got %v/%v/%d",
				i, want.Time, want.State, want.Total, got.Time, got.State, got.Total)
		}
		if len(got.Targets) != len(want.Targets) || len(got.Projectiles) != len(want.Projectiles) {
			t.Errorf("Frame %d: entity counts differ", i)
			continue
		}
		for j := range want.Targets {
			if got.Targets[j] != want.Targets[j] {
				t.Errorf("Frame %d target %d: expected %+v, got %+v", i, j, want.Targets[j], got.Targets[j])
			}
		}
		if len(got.Events) != len(want.Events) {
			t.Errorf("Frame %d: expected %d events, got %d", i, len(want.Events), len(got.Events))
		}
	}

	sum := Summarize(frames)
	if sum.Frames != len(recorded) || sum.Shots != 1 {
		t.Errorf("Expected %d frames and 1 shot, got %+v", len(recorded), sum)
	}
}

func TestReaderRejectsVersion(t *testing.T) {
	data, err := msgpack.Marshal(&Header{Version: FormatVersion + 1})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if _, err := NewReader(bytes.NewReader(data)); !errors.Is(err, ErrVersion) {
		t.Errorf("Expected ErrVersion, got %v", err)
	}
}

func TestReaderEmptyStream(t *testing.T) {
	if _, err := NewReader(bytes.NewReader(nil)); !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	frames := []Frame{
		{Index: 0, Snapshot: engine.Snapshot{Events: []event.Event{{Type: event.EventStart}, {Type: event.EventShot}}}},
		{Index: 1, Snapshot: engine.Snapshot{ChainCount: 2, Events: []event.Event{
			{Type: event.EventMerge}, {Type: event.EventClear, Count: 4},
		}}},
		{Index: 2, Snapshot: engine.Snapshot{Total: 90, Events: []event.Event{
			{Type: event.EventChainReset}, {Type: event.EventBreach},
		}}},
	}

	s := Summarize(frames)
	want := Summary{Frames: 3, Shots: 1, Merges: 1, Clears: 1, Cleared: 4, ChainResets: 1, Breaches: 1, BestChain: 2, FinalTotal: 90}
	if s != want {
		t.Errorf("Expected %+v, got %+v", want, s)
	}
}
