package asset

import (
	"image/color"

	"github.com/younwookim/motogame/internal/domain/entity"
)

// Loader decodes assets from paths relative to the assets directory.
type Loader interface {
	LoadTexture(path string) (*Texture, error)
	LoadSound(path string) (*Sound, error)
	LoadMusic(path string) (*Music, error)
	LoadFont(path string, size float64) (*Font, error)
}

// Unloader is implemented by loaders that hold native memory.
type Unloader interface {
	UnloadTexture(t *Texture)
}

// Audio plays sounds on channels and one music track.
// loops is LoopOnce or LoopForever.
type Audio interface {
	PlaySound(s *Sound, loops int) (Channel, error)
	IsChannelPlaying(ch Channel) bool
	StopChannel(ch Channel)
	PlayMusic(m *Music, loops int) error
	StopMusic()
	IsMusicPlaying() bool
}

// Canvas is the per-frame draw target.
type Canvas interface {
	DrawTexture(t *Texture, dst entity.Rect)
	FillRect(dst entity.Rect, c color.Color)
	DrawText(s string, x, y float64, f *Font, c color.Color)
}

// Blit draws t into dst, or a solid placeholder when t is absent.
func Blit(c Canvas, t *Texture, dst entity.Rect, placeholder color.Color) {
	if t == nil {
		c.FillRect(dst, placeholder)
		return
	}
	c.DrawTexture(t, dst)
}
