package entity

import "math"

// ScrollLayer is one horizontally looping background layer.
// Offset is kept in [0, Width) so it never grows without bound.
// Width is the drawn width of one copy of the layer texture. The game draws
// every layer stretched to the window width, so the wrap width is the window
// width whatever the texture's own size.
type ScrollLayer struct {
	Offset float64
	Width  float64 // drawn width in pixels
	Speed  float64 // pixels per second
}

// Advance scrolls the layer by Speed*dt and wraps the offset.
func (l *ScrollLayer) Advance(dt float64) {
	if l.Width <= 0 {
		l.Offset = 0
		return
	}
	l.Offset = math.Mod(l.Offset+l.Speed*dt, l.Width)
	if l.Offset < 0 {
		l.Offset += l.Width
	}
	// math.Mod can hand back Width itself after the correction for tiny negatives
	if l.Offset >= l.Width {
		l.Offset = 0
	}
}

// DrawX returns the x positions of the two copies needed to cover the screen.
func (l *ScrollLayer) DrawX() (first, second float64) {
	return -l.Offset, -l.Offset + l.Width
}

// Background is a stack of parallax layers drawn back to front.
type Background struct {
	Layers []ScrollLayer
}

// NewBackground creates layers of the given width. Each factor scales baseSpeed,
// so factors {0.5, 1} give a far layer moving at half the speed of the near one.
func NewBackground(width, baseSpeed float64, factors ...float64) *Background {
	bg := &Background{Layers: make([]ScrollLayer, len(factors))}
	for i, f := range factors {
		bg.Layers[i] = ScrollLayer{Width: width, Speed: baseSpeed * f}
	}
	return bg
}

// Advance scrolls every layer.
func (b *Background) Advance(dt float64) {
	for i := range b.Layers {
		b.Layers[i].Advance(dt)
	}
}

// Reset rewinds every layer to offset zero.
func (b *Background) Reset() {
	for i := range b.Layers {
		b.Layers[i].Offset = 0
	}
}
