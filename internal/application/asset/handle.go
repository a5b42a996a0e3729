// Package asset is the boundary between the game and its rendering/audio backend.
//
// Screens hold opaque handles and issue calls through Loader, Audio and Canvas.
// A nil handle means the asset is absent; every call accepts it.
package asset

import "errors"

var (
	// ErrNotLoaded is returned when a required asset could not be loaded
	ErrNotLoaded = errors.New("asset not loaded")
	// ErrNoChannel is returned when no playback channel is available
	ErrNoChannel = errors.New("no free audio channel")
)

// Texture is a loaded image.
type Texture struct {
	path   string
	w, h   int
	native any
}

// NewTexture wraps a backend image. Backends call this from LoadTexture.
func NewTexture(path string, w, h int, native any) *Texture {
	return &Texture{path: path, w: w, h: h, native: native}
}

// Size returns the texture size in pixels, (0, 0) for nil.
func (t *Texture) Size() (int, int) {
	if t == nil {
		return 0, 0
	}
	return t.w, t.h
}

func (t *Texture) Path() string { return t.path }
func (t *Texture) Native() any  { return t.native }

// Sound is a one-shot sample played on a channel.
type Sound struct {
	path   string
	native any
}

func NewSound(path string, native any) *Sound { return &Sound{path: path, native: native} }
func (s *Sound) Path() string                 { return s.path }
func (s *Sound) Native() any                  { return s.native }

// Music is a streamed background track. Only one plays at a time.
type Music struct {
	path   string
	native any
}

func NewMusic(path string, native any) *Music { return &Music{path: path, native: native} }
func (m *Music) Path() string                 { return m.path }
func (m *Music) Native() any                  { return m.native }

// Font is a sized font face.
type Font struct {
	path   string
	size   float64
	native any
}

func NewFont(path string, size float64, native any) *Font {
	return &Font{path: path, size: size, native: native}
}

// Size returns the font size in pixels, 0 for nil.
func (f *Font) Size() float64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *Font) Native() any {
	if f == nil {
		return nil
	}
	return f.native
}

// Channel identifies a playing sound. NoChannel is never playing.
type Channel int

const NoChannel Channel = -1

// Loop counts for PlaySound / PlayMusic.
const (
	LoopOnce    = 0
	LoopForever = -1
)
