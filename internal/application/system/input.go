package system

import "github.com/younwookim/motogame/internal/domain/entity"

// Key is a logical key the game reacts to
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// EventKind classifies discrete input events
type EventKind int

const (
	KeyPressed EventKind = iota
	MouseClicked
	MouseMoved
	Quit // window close
)

// Event is one discrete input event of a frame
type Event struct {
	Kind EventKind `json:"kind"`
	Key  Key       `json:"key,omitempty"`
	X    int       `json:"x,omitempty"`
	Y    int       `json:"y,omitempty"`
}

// Press returns a key press event
func Press(k Key) Event { return Event{Kind: KeyPressed, Key: k} }

// Click returns a left click event at (x, y)
func Click(x, y int) Event { return Event{Kind: MouseClicked, X: x, Y: y} }

// Point returns the event position as float coordinates
func (e Event) Point() (float64, float64) { return float64(e.X), float64(e.Y) }

// Held is the set of movement keys held down this frame
type Held struct {
	Up    bool `json:"up,omitempty"`
	Down  bool `json:"down,omitempty"`
	Left  bool `json:"left,omitempty"`
	Right bool `json:"right,omitempty"`
}

// Movement converts held keys to a player movement
func (h Held) Movement() entity.Movement {
	return entity.Movement{Up: h.Up, Down: h.Down, Left: h.Left, Right: h.Right}
}

// InputState is everything read from the input devices in one frame
type InputState struct {
	Events []Event
	Held   Held
}

// InputSource polls the input devices once per frame
type InputSource interface {
	Poll() InputState
}

// InputSystem applies held input to the player
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// UpdatePlayer moves the player from the held keys, clamped to its bounds
func (s *InputSystem) UpdatePlayer(player *entity.Player, held Held, dt float64) {
	player.Move(held.Movement(), dt)
}
