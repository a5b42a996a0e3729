package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarrier_AdvanceAndOffScreen(t *testing.T) {
	b := Barrier{X: 1045, Y: 520, W: 50, H: 50}

	b.Advance(400, 0.5)
	assert.InDelta(t, 845.0, b.X, 1e-9)
	assert.False(t, b.OffScreen())

	b.X = -50
	assert.False(t, b.OffScreen(), "x+w == 0 is still on the edge")

	b.X = -50.01
	assert.True(t, b.OffScreen())
}

func TestBarrier_Hitbox(t *testing.T) {
	b := Barrier{X: 100, Y: 100, W: 50, H: 50}

	hb := b.Hitbox(10)
	assert.Equal(t, NewRect(110, 110, 30, 30), hb)

	// A player touching only the outer 10px does not collide
	player := NewRect(145, 100, 95, 95)
	assert.True(t, b.Rect().Intersects(player))
	assert.False(t, hb.Intersects(player))
}

func TestCoin_AdvanceAndOffScreen(t *testing.T) {
	c := Coin{X: 10, Y: 0, W: 25, H: 25}

	c.Advance(400, 0.1)
	assert.InDelta(t, -30.0, c.X, 1e-9)
	assert.True(t, c.OffScreen())
	assert.Equal(t, NewRect(c.X, 0, 25, 25), c.Rect())
}
