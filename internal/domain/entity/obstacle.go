package entity

// BarrierVariants is the number of barrier sprites a barrier may use.
const BarrierVariants = 3

// Barrier is a road obstacle. Touching one ends the run.
type Barrier struct {
	X, Y    float64
	W, H    float64
	Variant int // sprite index in [0, BarrierVariants)
}

// Rect returns the drawn rectangle of the barrier.
func (b *Barrier) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Hitbox returns the collision rectangle, inset by margin to make grazes forgiving.
func (b *Barrier) Hitbox(margin float64) Rect {
	return b.Rect().Shrink(margin)
}

// Advance moves the barrier left by speed*dt.
func (b *Barrier) Advance(speed, dt float64) {
	b.X -= speed * dt
}

// OffScreen reports whether the barrier has fully left the screen on the left.
func (b *Barrier) OffScreen() bool {
	return b.X+b.W < 0
}

// Coin is a collectible travelling with the road.
type Coin struct {
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle of the coin.
func (c *Coin) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Advance moves the coin left by speed*dt.
func (c *Coin) Advance(speed, dt float64) {
	c.X -= speed * dt
}

// OffScreen reports whether the coin has fully left the screen on the left.
func (c *Coin) OffScreen() bool {
	return c.X+c.W < 0
}
