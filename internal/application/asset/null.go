package asset

import (
	"image/color"

	"github.com/younwookim/motogame/internal/domain/entity"
)

// Null is a backend that loads nothing and draws nothing.
// Every load succeeds with an empty handle; sounds finish immediately.
// Headless replays run on it.
type Null struct {
	musicPlaying bool
}

var (
	_ Loader = (*Null)(nil)
	_ Audio  = (*Null)(nil)
	_ Canvas = (*Null)(nil)
)

func (n *Null) LoadTexture(path string) (*Texture, error) { return NewTexture(path, 0, 0, nil), nil }
func (n *Null) LoadSound(path string) (*Sound, error)     { return NewSound(path, nil), nil }
func (n *Null) LoadMusic(path string) (*Music, error)     { return NewMusic(path, nil), nil }

func (n *Null) LoadFont(path string, size float64) (*Font, error) {
	return NewFont(path, size, nil), nil
}

func (n *Null) PlaySound(*Sound, int) (Channel, error) { return NoChannel, nil }
func (n *Null) IsChannelPlaying(Channel) bool          { return false }
func (n *Null) StopChannel(Channel)                    {}

func (n *Null) PlayMusic(*Music, int) error {
	n.musicPlaying = true
	return nil
}

func (n *Null) StopMusic()           { n.musicPlaying = false }
func (n *Null) IsMusicPlaying() bool { return n.musicPlaying }

func (n *Null) DrawTexture(*Texture, entity.Rect)                     {}
func (n *Null) FillRect(entity.Rect, color.Color)                     {}
func (n *Null) DrawText(string, float64, float64, *Font, color.Color) {}
