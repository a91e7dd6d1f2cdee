package event

// EventType represents the type of feedback event
type EventType int

const (
	// EventStart signals a new session
	// Trigger: Engine.Start
	// Consumer: audio, hosts | Position: zero
	EventStart EventType = iota + 1

	// EventShot signals a projectile leaving the muzzle
	// Trigger: Engine.Fire | Kind: projectile kind, Position: muzzle, EntityID: projectile
	EventShot

	// EventMerge signals a matching hit that scored
	// Trigger: collision pass | Position: impact point, EntityID: hit target, Count: chain count
	EventMerge

	// EventClear signals a run of matching path targets removed together
	// Trigger: collision pass, after the EventMerge of the same hit | Position: run centroid, Count: run length
	EventClear

	// EventChainReset signals the idle window elapsed and the chain score was banked
	// Trigger: Engine.Step | Count: chain count before reset
	EventChainReset

	// EventBreach signals a path target reaching the end of the path
	// Trigger: Engine.Step | Position: path end, EntityID: target
	EventBreach
)

var typeNames = map[EventType]string{
	EventStart:      "Start",
	EventShot:       "Shot",
	EventMerge:      "Merge",
	EventClear:      "Clear",
	EventChainReset: "ChainReset",
	EventBreach:     "Breach",
}

// String returns the registered name, or "Unknown"
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseType returns the EventType for a registered name
func ParseType(name string) (EventType, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
