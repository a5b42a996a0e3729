// Package ebitenbackend implements the asset backend interfaces on Ebitengine.
package ebitenbackend

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/motogame/internal/application/asset"
)

// Loader decodes images, audio and fonts into Ebitengine resources.
// Audio is decoded up front to PCM at the context sample rate so one
// sound can play on several channels at once.
type Loader struct {
	fsys       fs.FS
	sampleRate int
}

var (
	_ asset.Loader   = (*Loader)(nil)
	_ asset.Unloader = (*Loader)(nil)
)

// NewLoader reads from the OS filesystem
func NewLoader(sampleRate int) *Loader {
	return &Loader{sampleRate: sampleRate}
}

// NewFSLoader reads from fsys
func NewFSLoader(fsys fs.FS, sampleRate int) *Loader {
	return &Loader{fsys: fsys, sampleRate: sampleRate}
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, path)
	}
	return os.ReadFile(path)
}

// LoadTexture loads a PNG or JPEG image
func (l *Loader) LoadTexture(path string) (*asset.Texture, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	return asset.NewTexture(path, b.Dx(), b.Dy(), ebiten.NewImageFromImage(img)), nil
}

// UnloadTexture frees the GPU image behind t
func (l *Loader) UnloadTexture(t *asset.Texture) {
	if img, ok := t.Native().(*ebiten.Image); ok {
		img.Deallocate()
	}
}

// LoadSound loads a WAV, MP3 or OGG sample
func (l *Loader) LoadSound(path string) (*asset.Sound, error) {
	pcm, err := l.decodeAudio(path)
	if err != nil {
		return nil, err
	}
	return asset.NewSound(path, pcm), nil
}

// LoadMusic loads a WAV, MP3 or OGG track
func (l *Loader) LoadMusic(path string) (*asset.Music, error) {
	pcm, err := l.decodeAudio(path)
	if err != nil {
		return nil, err
	}
	return asset.NewMusic(path, pcm), nil
}

func (l *Loader) decodeAudio(path string) ([]byte, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	var stream io.Reader
	reader := bytes.NewReader(data)
	switch audioFormat(path) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.sampleRate, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(l.sampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.sampleRate, reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio %s: %w", path, err)
	}
	return pcm, nil
}

func audioFormat(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// LoadFont loads a TrueType or OpenType font at size pixels
func (l *Loader) LoadFont(path string, size float64) (*asset.Font, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	return asset.NewFont(path, size, face), nil
}
