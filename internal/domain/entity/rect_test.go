package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"full overlap", NewRect(0, 0, 10, 10), true},
		{"partial overlap", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 2, 2), true},
		{"touching right edge", NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 10, 10, 10), false},
		{"touching corner", NewRect(10, 10, 5, 5), false},
		{"far left", NewRect(-20, 0, 5, 5), false},
		{"overlap x only", NewRect(5, 20, 10, 10), false},
		{"zero width inside", NewRect(5, 2, 0, 4), false},
		{"zero size inside", NewRect(5, 5, 0, 0), false},
		{"negative height", NewRect(2, 8, 4, -3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			// Symmetric
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRect_Intersects_Reflexive(t *testing.T) {
	r := NewRect(3, 4, 5, 6)
	assert.True(t, r.Intersects(r))
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	assert.True(t, r.Contains(10, 10), "top-left is inclusive")
	assert.True(t, r.Contains(29.9, 29.9))
	assert.False(t, r.Contains(30, 15), "right edge is exclusive")
	assert.False(t, r.Contains(15, 30), "bottom edge is exclusive")
	assert.False(t, r.Contains(9, 15))
}

func TestRect_Shrink(t *testing.T) {
	r := NewRect(0, 0, 50, 50)

	s := r.Shrink(10)
	assert.Equal(t, NewRect(10, 10, 30, 30), s)

	assert.Equal(t, r, r.Shrink(0))
	assert.Equal(t, r, r.Shrink(-5))

	collapsed := r.Shrink(40)
	assert.Equal(t, 0.0, collapsed.W)
	assert.Equal(t, 0.0, collapsed.H)
	assert.Equal(t, 25.0, collapsed.X)
	assert.False(t, collapsed.Intersects(r), "a collapsed hitbox never collides")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(42, 0, 10))
}
