package score

// MaxChainBonus caps the count contribution to the multiplier (7x total)
const MaxChainBonus = 6

// Chain is the combo counter and multiplier-weighted score accumulator
// Resets are decided by the owner, Chain never resets itself
type Chain struct {
	count int
	score int
}

// Count returns merges registered since the last reset
func (c *Chain) Count() int { return c.count }

// Score returns the accumulated score since the last reset
func (c *Chain) Score() int { return c.score }

// Multiplier returns 1 + min(count, 6)
func (c *Chain) Multiplier() int {
	return 1 + min(c.count, MaxChainBonus)
}

// Reset zeroes count and score
func (c *Chain) Reset() {
	c.count = 0
	c.score = 0
}

// RegisterMerge increments count, then adds basePoints at the new multiplier
// Returns the points added
func (c *Chain) RegisterMerge(basePoints int) int {
	c.count++
	pts := basePoints * c.Multiplier()
	c.score += pts
	return pts
}

// RegisterClear adds pointsPerBall*cleared at the current multiplier without touching count
// Non-positive cleared is ignored; returns the points added
func (c *Chain) RegisterClear(pointsPerBall, cleared int) int {
	if cleared <= 0 {
		return 0
	}
	pts := pointsPerBall * cleared * c.Multiplier()
	c.score += pts
	return pts
}

// IsActive reports whether any merge has been registered since the last reset
func (c *Chain) IsActive() bool {
	return c.count > 0
}
