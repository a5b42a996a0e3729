// Package assettest provides scriptable asset backends for tests.
package assettest

import (
	"fmt"
	"image/color"
	"io/fs"
	"strings"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// Loader succeeds for every path except those containing one of Missing.
type Loader struct {
	Missing  []string
	Loaded   []string
	Unloaded int
}

func (l *Loader) fail(path string) error {
	for _, m := range l.Missing {
		if strings.Contains(path, m) {
			return fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
		}
	}
	l.Loaded = append(l.Loaded, path)
	return nil
}

func (l *Loader) LoadTexture(path string) (*asset.Texture, error) {
	if err := l.fail(path); err != nil {
		return nil, err
	}
	return asset.NewTexture(path, 64, 32, nil), nil
}

func (l *Loader) LoadSound(path string) (*asset.Sound, error) {
	if err := l.fail(path); err != nil {
		return nil, err
	}
	return asset.NewSound(path, nil), nil
}

func (l *Loader) LoadMusic(path string) (*asset.Music, error) {
	if err := l.fail(path); err != nil {
		return nil, err
	}
	return asset.NewMusic(path, nil), nil
}

func (l *Loader) LoadFont(path string, size float64) (*asset.Font, error) {
	if err := l.fail(path); err != nil {
		return nil, err
	}
	return asset.NewFont(path, size, nil), nil
}

func (l *Loader) UnloadTexture(*asset.Texture) { l.Unloaded++ }

// Audio records calls. A channel keeps playing until Finish or StopChannel.
type Audio struct {
	Played  []string
	Stopped []asset.Channel
	Music   string
	PlayErr error
	// AutoFinish makes every sound report finished right away.
	AutoFinish bool

	playing map[asset.Channel]bool
	next    asset.Channel
}

func (a *Audio) PlaySound(s *asset.Sound, _ int) (asset.Channel, error) {
	if a.PlayErr != nil {
		return asset.NoChannel, a.PlayErr
	}
	if a.playing == nil {
		a.playing = make(map[asset.Channel]bool)
	}
	ch := a.next
	a.next++
	a.Played = append(a.Played, s.Path())
	a.playing[ch] = !a.AutoFinish
	return ch, nil
}

func (a *Audio) IsChannelPlaying(ch asset.Channel) bool { return a.playing[ch] }

func (a *Audio) StopChannel(ch asset.Channel) {
	a.Stopped = append(a.Stopped, ch)
	delete(a.playing, ch)
}

// Finish marks ch as done playing.
func (a *Audio) Finish(ch asset.Channel) { delete(a.playing, ch) }

func (a *Audio) PlayMusic(m *asset.Music, _ int) error {
	a.Music = m.Path()
	return nil
}

func (a *Audio) StopMusic()           { a.Music = "" }
func (a *Audio) IsMusicPlaying() bool { return a.Music != "" }

// Canvas records draw calls as short strings.
type Canvas struct {
	Ops []string
}

func (c *Canvas) DrawTexture(t *asset.Texture, dst entity.Rect) {
	c.Ops = append(c.Ops, fmt.Sprintf("texture %s %v", t.Path(), dst))
}

func (c *Canvas) FillRect(dst entity.Rect, _ color.Color) {
	c.Ops = append(c.Ops, fmt.Sprintf("rect %v", dst))
}

func (c *Canvas) DrawText(s string, _, _ float64, _ *asset.Font, _ color.Color) {
	c.Ops = append(c.Ops, "text "+s)
}

// Texts returns the drawn strings in order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if s, ok := strings.CutPrefix(op, "text "); ok {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many ops start with prefix.
func (c *Canvas) Count(prefix string) int {
	n := 0
	for _, op := range c.Ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}
