package ebitenbackend

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/motogame/internal/application/asset"
)

// MaxChannels is the number of sounds that may play at once
const MaxChannels = 16

// Audio plays decoded PCM through an Ebitengine audio context.
type Audio struct {
	ctx         *audio.Context
	channels    map[asset.Channel]*audio.Player
	next        asset.Channel
	music       *audio.Player
	musicVolume float64
	soundVolume float64
}

var _ asset.Audio = (*Audio)(nil)

// NewAudio creates the audio context. Only one may exist per process.
func NewAudio(sampleRate int, musicVolume, soundVolume float64) *Audio {
	return &Audio{
		ctx:         audio.NewContext(sampleRate),
		channels:    make(map[asset.Channel]*audio.Player),
		musicVolume: musicVolume,
		soundVolume: soundVolume,
	}
}

func (a *Audio) newPlayer(pcm []byte, loops int) (*audio.Player, error) {
	var src io.Reader = bytes.NewReader(pcm)
	if loops == asset.LoopForever {
		src = audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}
	return a.ctx.NewPlayer(src)
}

// reap drops channels whose sound has finished
func (a *Audio) reap() {
	for ch, p := range a.channels {
		if !p.IsPlaying() {
			_ = p.Close()
			delete(a.channels, ch)
		}
	}
}

func (a *Audio) PlaySound(s *asset.Sound, loops int) (asset.Channel, error) {
	if s == nil {
		return asset.NoChannel, nil
	}
	pcm, ok := s.Native().([]byte)
	if !ok {
		return asset.NoChannel, fmt.Errorf("sound %s has no PCM data", s.Path())
	}

	a.reap()
	if len(a.channels) >= MaxChannels {
		return asset.NoChannel, asset.ErrNoChannel
	}

	p, err := a.newPlayer(pcm, loops)
	if err != nil {
		return asset.NoChannel, fmt.Errorf("failed to create audio player for %s: %w", s.Path(), err)
	}
	p.SetVolume(a.soundVolume)
	p.Play()

	ch := a.next
	a.next++
	a.channels[ch] = p
	return ch, nil
}

func (a *Audio) IsChannelPlaying(ch asset.Channel) bool {
	p, ok := a.channels[ch]
	return ok && p.IsPlaying()
}

func (a *Audio) StopChannel(ch asset.Channel) {
	if p, ok := a.channels[ch]; ok {
		p.Pause()
		_ = p.Close()
		delete(a.channels, ch)
	}
}

func (a *Audio) PlayMusic(m *asset.Music, loops int) error {
	a.StopMusic()
	if m == nil {
		return nil
	}
	pcm, ok := m.Native().([]byte)
	if !ok {
		return fmt.Errorf("music %s has no PCM data", m.Path())
	}

	p, err := a.newPlayer(pcm, loops)
	if err != nil {
		return fmt.Errorf("failed to create music player for %s: %w", m.Path(), err)
	}
	p.SetVolume(a.musicVolume)
	p.Play()
	a.music = p
	return nil
}

func (a *Audio) StopMusic() {
	if a.music == nil {
		return
	}
	a.music.Pause()
	_ = a.music.Close()
	a.music = nil
}

func (a *Audio) IsMusicPlaying() bool {
	return a.music != nil && a.music.IsPlaying()
}

// Close stops every channel and the music
func (a *Audio) Close() {
	for ch := range a.channels {
		a.StopChannel(ch)
	}
	a.StopMusic()
}
