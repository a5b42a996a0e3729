package asset

import (
	"errors"
	"fmt"
	"path"

	"github.com/charmbracelet/log"

	"github.com/younwookim/motogame/internal/infrastructure/config"
)

// ResourceSet owns every asset of the game, keyed by manifest id.
// It is loaded once at startup and released at shutdown.
type ResourceSet struct {
	textures map[string]*Texture
	sounds   map[string]*Sound
	music    map[string]*Music
	font     *Font
	loader   Loader
	logger   *log.Logger
}

// Load loads every asset listed in the manifest.
// A required asset that fails is fatal; optional ones are logged and left absent.
func Load(loader Loader, cfg config.AssetsConfig, logger *log.Logger) (*ResourceSet, error) {
	r := &ResourceSet{
		textures: make(map[string]*Texture, len(cfg.Images)),
		sounds:   make(map[string]*Sound, len(cfg.Sounds)),
		music:    make(map[string]*Music, len(cfg.Music)),
		loader:   loader,
		logger:   logger.WithPrefix("assets"),
	}

	var fatal []error
	check := func(a config.AssetConfig, err error) bool {
		if err == nil {
			return true
		}
		if a.Required {
			fatal = append(fatal, fmt.Errorf("%w: %s (%s): %w", ErrNotLoaded, a.ID, a.Path, err))
		} else {
			r.logger.Warn("optional asset missing", "id", a.ID, "path", a.Path, "err", err)
		}
		return false
	}

	for _, a := range cfg.Images {
		t, err := loader.LoadTexture(path.Join(cfg.BasePath, a.Path))
		if check(a, err) {
			r.textures[a.ID] = t
		}
	}
	for _, a := range cfg.Sounds {
		s, err := loader.LoadSound(path.Join(cfg.BasePath, a.Path))
		if check(a, err) {
			r.sounds[a.ID] = s
		}
	}
	for _, a := range cfg.Music {
		m, err := loader.LoadMusic(path.Join(cfg.BasePath, a.Path))
		if check(a, err) {
			r.music[a.ID] = m
		}
	}

	font, err := loader.LoadFont(path.Join(cfg.BasePath, cfg.Font.Path), cfg.Font.Size)
	if err != nil {
		fatal = append(fatal, fmt.Errorf("%w: font (%s): %w", ErrNotLoaded, cfg.Font.Path, err))
	}
	r.font = font

	if len(fatal) > 0 {
		r.Release()
		return nil, errors.Join(fatal...)
	}

	r.logger.Info("assets loaded",
		"textures", len(r.textures), "sounds", len(r.sounds), "music", len(r.music))
	return r, nil
}

// Texture returns the texture for id, nil if absent.
func (r *ResourceSet) Texture(id string) *Texture { return r.textures[id] }

// Sound returns the sound for id, nil if absent.
func (r *ResourceSet) Sound(id string) *Sound { return r.sounds[id] }

// Music returns the track for id, nil if absent.
func (r *ResourceSet) Music(id string) *Music { return r.music[id] }

// Font returns the game font.
func (r *ResourceSet) Font() *Font { return r.font }

// Release drops all handles, unloading textures when the loader supports it.
func (r *ResourceSet) Release() {
	if u, ok := r.loader.(Unloader); ok {
		for _, t := range r.textures {
			u.UnloadTexture(t)
		}
	}
	clear(r.textures)
	clear(r.sounds)
	clear(r.music)
	r.font = nil
}
