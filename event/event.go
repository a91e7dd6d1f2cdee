package event

import (
	"github.com/lixenwraith/skullblast/component"
	"github.com/lixenwraith/skullblast/vmath"
)

// Event is an abstract feedback signal emitted by the engine
// Hosts map events to sound, haptics or UI; the engine never calls out
type Event struct {
	Type     EventType        `msgpack:"type"`
	Time     float64          `msgpack:"time"`
	Kind     component.Kind   `msgpack:"kind"`
	Position vmath.Vec2       `msgpack:"pos"`
	EntityID component.Entity `msgpack:"id"`
	Count    int              `msgpack:"count"`
}
