package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/motogame/internal/application/system"
)

var keyMap = map[ebiten.Key]system.Key{
	ebiten.KeyArrowUp:     system.KeyUp,
	ebiten.KeyArrowDown:   system.KeyDown,
	ebiten.KeyArrowLeft:   system.KeyLeft,
	ebiten.KeyArrowRight:  system.KeyRight,
	ebiten.KeyW:           system.KeyUp,
	ebiten.KeyS:           system.KeyDown,
	ebiten.KeyA:           system.KeyLeft,
	ebiten.KeyD:           system.KeyRight,
	ebiten.KeyEnter:       system.KeyEnter,
	ebiten.KeyNumpadEnter: system.KeyEnter,
	ebiten.KeyEscape:      system.KeyEscape,
}

// Input polls keyboard, mouse and window state once per tick.
// Requires ebiten.SetWindowClosingHandled(true) for the close event.
type Input struct {
	keys      []ebiten.Key
	lastX     int
	lastY     int
	closeSent bool
}

var _ system.InputSource = (*Input)(nil)

func NewInput() *Input {
	return &Input{lastX: -1, lastY: -1}
}

func (in *Input) Poll() system.InputState {
	var events []system.Event

	if ebiten.IsWindowBeingClosed() && !in.closeSent {
		in.closeSent = true
		events = append(events, system.Event{Kind: system.Quit})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	events = append(events, translateKeys(in.keys)...)

	mx, my := ebiten.CursorPosition()
	if mx != in.lastX || my != in.lastY {
		in.lastX, in.lastY = mx, my
		events = append(events, system.Event{Kind: system.MouseMoved, X: mx, Y: my})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, system.Click(mx, my))
	}

	return system.InputState{
		Events: events,
		Held: heldFrom(func(k ebiten.Key) bool {
			return ebiten.IsKeyPressed(k)
		}),
	}
}

// translateKeys maps just-pressed keys to press events, dropping unmapped ones
func translateKeys(keys []ebiten.Key) []system.Event {
	var events []system.Event
	for _, k := range keys {
		if gk, ok := keyMap[k]; ok {
			events = append(events, system.Press(gk))
		}
	}
	return events
}

func heldFrom(pressed func(ebiten.Key) bool) system.Held {
	var h system.Held
	for k, gk := range keyMap {
		if !pressed(k) {
			continue
		}
		switch gk {
		case system.KeyUp:
			h.Up = true
		case system.KeyDown:
			h.Down = true
		case system.KeyLeft:
			h.Left = true
		case system.KeyRight:
			h.Right = true
		}
	}
	return h
}
