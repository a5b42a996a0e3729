package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/motogame/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input and delta of the current frame and advances
func (r *Replayer) Next() (system.InputState, float64, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.input(), fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Stepper advances a game by one frame
type Stepper interface {
	Step(in system.InputState, dt float64) error
}

// Play feeds every remaining frame to g. It stops early, without error,
// when the game terminates. Returns the number of frames fed.
func (r *Replayer) Play(g Stepper) (int, error) {
	played := 0
	for {
		in, dt, ok := r.Next()
		if !ok {
			return played, nil
		}
		played++
		if err := g.Step(in, dt); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return played, nil
			}
			return played, fmt.Errorf("frame %d: %w", r.frame-1, err)
		}
	}
}

// CreateTestReplayData creates replay data for testing: frames of dt with no input
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    12345,
		Frames:  make([]FrameInput, frames),
	}
	for i := range frames {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	return data
}
