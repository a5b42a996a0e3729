package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPlayer() *Player {
	bounds := PlayerBounds{Top: 520, Bottom: 595, MinX: 80, MaxX: 120}
	return NewPlayer(100, 520, 95, 300, 100, bounds, CharacterOne)
}

func TestPlayer_MoveVertical(t *testing.T) {
	p := newTestPlayer()

	p.Move(Movement{Down: true}, 0.1)
	assert.InDelta(t, 550.0, p.Y, 1e-9)

	p.Move(Movement{Up: true}, 0.05)
	assert.InDelta(t, 535.0, p.Y, 1e-9)
}

func TestPlayer_ClampedForAnyDelta(t *testing.T) {
	deltas := []float64{0, 0.001, 1.0 / 60.0, 0.5, 3, 1000, 1e9}
	moves := []Movement{
		{Up: true}, {Down: true}, {Left: true}, {Right: true},
		{Up: true, Left: true}, {Down: true, Right: true},
	}

	for _, dt := range deltas {
		for _, m := range moves {
			p := newTestPlayer()
			p.Move(m, dt)
			assert.GreaterOrEqual(t, p.Y, p.Bounds.Top)
			assert.LessOrEqual(t, p.Y, p.Bounds.Bottom)
			assert.GreaterOrEqual(t, p.X, p.Bounds.MinX)
			assert.LessOrEqual(t, p.X, p.Bounds.MaxX)
		}
	}
}

func TestPlayer_NegativeDeltaIgnored(t *testing.T) {
	p := newTestPlayer()
	p.Move(Movement{Down: true, Right: true}, -5)
	assert.Equal(t, 520.0, p.Y)
	assert.Equal(t, 100.0, p.X)
}

func TestPlayer_NoHorizontalSpeedKeepsX(t *testing.T) {
	p := NewPlayer(300, 520, 95, 300, 0, PlayerBounds{Top: 520, Bottom: 595}, CharacterTwo)
	p.Move(Movement{Left: true}, 10)
	assert.Equal(t, 300.0, p.X, "horizontal bounds are ignored when horizontal movement is off")
}

func TestNewPlayer_ClampsStart(t *testing.T) {
	p := NewPlayer(0, 0, 95, 300, 100, PlayerBounds{Top: 520, Bottom: 595, MinX: 80, MaxX: 120}, CharacterOne)
	assert.Equal(t, 520.0, p.Y)
	assert.Equal(t, 80.0, p.X)
	assert.Equal(t, NewRect(80, 520, 95, 95), p.Rect())
}

func TestCharacter(t *testing.T) {
	assert.Equal(t, "character-01", CharacterOne.String())
	assert.Equal(t, "character-02", CharacterTwo.String())
	assert.Equal(t, CharacterTwo, CharacterOne.Next())
	assert.Equal(t, CharacterOne, CharacterTwo.Next())
	assert.Equal(t, CharacterTwo, CharacterOne.Prev())
	assert.True(t, CharacterTwo.Valid())
	assert.False(t, Character(7).Valid())
}
