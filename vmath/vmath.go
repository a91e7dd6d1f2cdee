package vmath

// Epsilon is the length below which vectors are treated as zero
const Epsilon = 1e-4

// --- Scalars ---

// Clamp limits v to [lo, hi]
// lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp performs standard linear interpolation
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Deterministic for a given seed, which keeps simulation runs reproducible
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator, zero seed is replaced with 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
