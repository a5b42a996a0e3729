package entity

import "fmt"

// Character is the rider chosen on the character select screen.
type Character int

const (
	CharacterOne Character = iota
	CharacterTwo
)

// Characters lists every selectable character in display order.
var Characters = []Character{CharacterOne, CharacterTwo}

// String returns the asset-friendly name of the character.
func (c Character) String() string {
	switch c {
	case CharacterOne:
		return "character-01"
	case CharacterTwo:
		return "character-02"
	default:
		return fmt.Sprintf("character-%02d", int(c)+1)
	}
}

// Valid reports whether c is one of Characters.
func (c Character) Valid() bool {
	return c == CharacterOne || c == CharacterTwo
}

// Next returns the following character, wrapping around.
func (c Character) Next() Character {
	return Characters[(int(c)+1)%len(Characters)]
}

// Prev returns the preceding character, wrapping around.
func (c Character) Prev() Character {
	n := len(Characters)
	return Characters[(int(c)-1+n)%n]
}

// Movement holds the held direction keys for one frame.
type Movement struct {
	Up, Down, Left, Right bool
}

// PlayerBounds limits where the player may stand.
// Horizontal limits only apply when the player has a horizontal speed.
type PlayerBounds struct {
	Top, Bottom float64
	MinX, MaxX  float64
}

// Player is the rider. Position is continuous, size is a fixed square.
type Player struct {
	X, Y       float64
	Size       float64
	VertSpeed  float64
	HorizSpeed float64
	Bounds     PlayerBounds
	Character  Character
}

// NewPlayer creates a player at (x, y) already clamped to bounds.
func NewPlayer(x, y, size, vertSpeed, horizSpeed float64, bounds PlayerBounds, ch Character) *Player {
	p := &Player{
		X:          x,
		Y:          y,
		Size:       size,
		VertSpeed:  vertSpeed,
		HorizSpeed: horizSpeed,
		Bounds:     bounds,
		Character:  ch,
	}
	p.clamp()
	return p
}

// Move applies held keys for dt seconds and clamps to bounds.
// Negative dt is treated as zero.
func (p *Player) Move(m Movement, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if m.Up {
		p.Y -= p.VertSpeed * dt
	}
	if m.Down {
		p.Y += p.VertSpeed * dt
	}
	if p.HorizSpeed > 0 {
		if m.Left {
			p.X -= p.HorizSpeed * dt
		}
		if m.Right {
			p.X += p.HorizSpeed * dt
		}
	}
	p.clamp()
}

func (p *Player) clamp() {
	p.Y = Clamp(p.Y, p.Bounds.Top, p.Bounds.Bottom)
	if p.HorizSpeed > 0 {
		p.X = Clamp(p.X, p.Bounds.MinX, p.Bounds.MaxX)
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}
