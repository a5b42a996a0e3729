package config

import (
	"errors"
	"fmt"
)

// Validate checks the config for values the game cannot run with.
// All problems are reported together, each wrapping ErrInvalid.
// Asset ids must be unique within their group (an image and a sound may share one).
func (c *GameConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Timing.MaxFrameDelta <= 0 {
		bad("timing.maxFrameDelta must be positive")
	}
	if c.Road.Height <= 0 || c.Road.Height > float64(c.Window.Height) {
		bad("road.height %.0f must be in (0, window.height]", c.Road.Height)
	}
	if c.Player.Size <= 0 || c.Player.Size > c.Road.Height {
		bad("player.size %.0f must be in (0, road.height]", c.Player.Size)
	}
	if c.Player.VertSpeed < 0 || c.Player.HorizSpeed < 0 || c.Player.HorizMoveRange < 0 {
		bad("player speeds and range must not be negative")
	}
	if c.Barrier.Width <= 0 || c.Barrier.Height <= 0 || c.Barrier.Height > c.Road.Height {
		bad("barrier size must be positive and fit the road")
	}
	if c.Barrier.Max < 1 || c.Coin.Max < 1 {
		bad("barrier.max and coin.max must be at least 1")
	}
	if c.Barrier.SpawnInterval <= 0 || c.Coin.SpawnInterval <= 0 {
		bad("spawn intervals must be positive")
	}
	if c.Barrier.HitboxMargin < 0 || 2*c.Barrier.HitboxMargin >= min(c.Barrier.Width, c.Barrier.Height) {
		bad("barrier.hitboxMargin must not be negative and must leave a hitbox")
	}
	if c.Coin.Width <= 0 || c.Coin.Height <= 0 || c.Coin.Height > c.Road.Height {
		bad("coin size must be positive and fit the road")
	}
	if c.Rules.WinTime <= 0 {
		bad("rules.winTime must be positive")
	}
	if c.Rules.WinDelayTime < 0 || c.Rules.TimeLimit < 0 {
		bad("rules.winDelayTime and rules.timeLimit must not be negative")
	}
	if len(c.Background.Parallax) != len(c.Background.Layers) {
		bad("background has %d parallax factors for %d layers", len(c.Background.Parallax), len(c.Background.Layers))
	}
	if c.Menu.AnimSpeed <= 0 {
		bad("menu.animSpeed must be positive")
	}
	if len(c.Intro.Slides) == 0 {
		bad("intro needs at least one slide")
	}
	if c.Intro.SlideDuration <= 0 {
		bad("intro.slideDuration must be positive")
	}
	if len(c.CharacterSelect.Previews) != 2 {
		bad("characterSelect needs one preview rect per character, got %d", len(c.CharacterSelect.Previews))
	}
	if c.Audio.SampleRate <= 0 {
		bad("audio.sampleRate must be positive")
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		bad("audio volumes must be in [0, 1]")
	}
	if c.Assets.Font.Path == "" || c.Assets.Font.Size <= 0 {
		bad("assets.font needs a path and a positive size")
	}

	for _, group := range [][]AssetConfig{c.Assets.Images, c.Assets.Sounds, c.Assets.Music} {
		seen := make(map[string]bool)
		for _, a := range group {
			switch {
			case a.ID == "" || a.Path == "":
				bad("asset entry needs both id and path (id=%q path=%q)", a.ID, a.Path)
			case seen[a.ID]:
				bad("duplicate asset id %q", a.ID)
			}
			seen[a.ID] = true
		}
	}

	return errors.Join(errs...)
}
