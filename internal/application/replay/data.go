package replay

import "github.com/younwookim/motogame/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the input of a single frame and the delta it ran with
type FrameInput struct {
	F      int            `json:"f"`            // Frame number
	DT     float64        `json:"dt"`           // Seconds
	U      bool           `json:"u,omitempty"`  // Up held
	D      bool           `json:"d,omitempty"`  // Down held
	L      bool           `json:"l,omitempty"`  // Left held
	R      bool           `json:"r,omitempty"`  // Right held
	Events []system.Event `json:"ev,omitempty"` // Discrete events
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(f int, in system.InputState, dt float64) FrameInput {
	return FrameInput{
		F:      f,
		DT:     dt,
		U:      in.Held.Up,
		D:      in.Held.Down,
		L:      in.Held.Left,
		R:      in.Held.Right,
		Events: in.Events,
	}
}

func (fi FrameInput) input() system.InputState {
	return system.InputState{
		Events: fi.Events,
		Held:   system.Held{Up: fi.U, Down: fi.D, Left: fi.L, Right: fi.R},
	}
}
