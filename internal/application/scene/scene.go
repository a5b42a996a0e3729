// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, intro, playing, etc.) implements the Scene interface
// to handle its own input, update logic and rendering. Scenes never switch
// screens themselves: they return a Transition and the game applies it
// between update and render.
package scene

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

// Transition is a request to change the active screen
type Transition struct {
	Target state.Screen
	Reason string
}

// To returns a transition request to target
func To(target state.Screen, reason string) *Transition {
	return &Transition{Target: target, Reason: reason}
}

// Scene represents a game screen.
//
// The game loop routes input events, then Update, then Draw to the active scene.
type Scene interface {
	// Screen returns the screen this scene implements.
	Screen() state.Screen

	// HandleInput handles one discrete input event.
	// Returns a transition request, nil to stay on the current screen.
	HandleInput(ev system.Event) *Transition

	// Update advances the scene by dt seconds with the currently held keys.
	// Returns a transition request, nil to stay. Returns an error to terminate the game.
	Update(dt float64, held system.Held) (*Transition, error)

	// Draw renders the scene.
	Draw(c asset.Canvas)

	// OnEnter is called when entering this scene, with the screen being left.
	OnEnter(from state.Screen)

	// OnExit is called when leaving this scene, with the destination screen.
	OnExit(to state.Screen)
}
