package event

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	if q.Consume() != nil {
		t.Error("Expected nil from empty queue")
	}

	q.Push(Event{Type: EventShot, Time: 1})
	q.Push(Event{Type: EventMerge, Time: 2})
	q.Push(Event{Type: EventClear, Time: 2, Count: 3})

	if q.Len() != 3 {
		t.Errorf("Expected 3 pending, got %d", q.Len())
	}

	got := q.Consume()
	want := []EventType{EventShot, EventMerge, EventClear}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := QueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventShot, Count: i})
	}

	got := q.Consume()
	if len(got) != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, len(got))
	}
	if got[0].Count != 10 {
		t.Errorf("Expected oldest surviving event 10, got %d", got[0].Count)
	}
	if got[len(got)-1].Count != total-1 {
		t.Errorf("Expected newest event %d, got %d", total-1, got[len(got)-1].Count)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventStart})
	q.Clear()
	if q.Consume() != nil {
		t.Error("Expected nil after clear")
	}
}

func TestTypeNames(t *testing.T) {
	for _, et := range []EventType{EventStart, EventShot, EventMerge, EventClear, EventChainReset, EventBreach} {
		parsed, ok := ParseType(et.String())
		if !ok || parsed != et {
			t.Errorf("Expected %v to parse back, got %v (%v)", et, parsed, ok)
		}
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(999).String())
	}
}
