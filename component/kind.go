package component

// Kind is the ball type shared by targets and projectiles
type Kind uint8

const (
	KindRed Kind = iota
	KindBlue
	KindGreen
	KindYellow
	KindPurple

	// Special kinds, never produced by the color spawner
	KindSkull
	KindFire

	kindCount
)

// ColorKindCount is the number of plain color kinds
const ColorKindCount = int(KindSkull)

var kindNames = [kindCount]string{
	KindRed:    "red",
	KindBlue:   "blue",
	KindGreen:  "green",
	KindYellow: "yellow",
	KindPurple: "purple",
	KindSkull:  "skull",
	KindFire:   "fire",
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// IsColor reports whether k is one of the five color kinds
func (k Kind) IsColor() bool {
	return k < KindSkull
}

// Valid reports whether k is a defined kind
func (k Kind) Valid() bool {
	return k < kindCount
}

// Matches reports whether a projectile of kind k scores against a target of kind other
// Kinds match only when equal, special kinds included
func (k Kind) Matches(other Kind) bool {
	return k == other
}

// ColorKind returns the i-th color kind, wrapping modulo the color count
func ColorKind(i int) Kind {
	if i < 0 {
		i = -i
	}
	return Kind(i % ColorKindCount)
}

// AllKinds returns every defined kind in declaration order
func AllKinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
