package state

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned for edges missing from the screen graph
var ErrIllegalTransition = errors.New("illegal screen transition")

// Screen is the active mode of the game. Exactly one is active at a time.
type Screen int

const (
	Menu Screen = iota
	Intro
	CharacterSelect
	Playing
	WinDelay
	Win
	Lose
	About
	Exit
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Intro:
		return "Intro"
	case CharacterSelect:
		return "CharacterSelect"
	case Playing:
		return "Playing"
	case WinDelay:
		return "WinDelay"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case About:
		return "About"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the loop stops on this screen
func (s Screen) Terminal() bool {
	return s == Exit
}

var edges = map[Screen][]Screen{
	Menu:            {Intro, CharacterSelect, About, Exit},
	Intro:           {Playing},
	CharacterSelect: {Menu},
	Playing:         {Lose, WinDelay},
	WinDelay:        {Win},
	Win:             {Menu},
	Lose:            {Menu},
	About:           {Menu},
}

// CanTransition reports whether from -> to is an edge of the screen graph.
// Closing the window reaches Exit from any screen; nothing leaves Exit.
func CanTransition(from, to Screen) bool {
	if from == Exit {
		return false
	}
	if to == Exit {
		return true
	}
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition is CanTransition as an error
func CheckTransition(from, to Screen) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
