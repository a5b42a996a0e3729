package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func loadDefault(t *testing.T) *GameConfig {
	t.Helper()
	cfg, err := NewLoader(configDir).Load("game.yaml")
	require.NoError(t, err)
	return cfg
}

func TestLoader_LoadDefault(t *testing.T) {
	cfg := loadDefault(t)

	assert.Equal(t, 1045, cfg.Window.Width)
	assert.Equal(t, 690, cfg.Window.Height)
	assert.Equal(t, 95.0, cfg.Player.Size)
	assert.Equal(t, 170.0, cfg.Road.Height)
	assert.Equal(t, 5, cfg.Barrier.Max)
	assert.Equal(t, 2.0, cfg.Barrier.SpawnInterval)
	assert.Equal(t, 1.5, cfg.Coin.SpawnInterval)
	assert.Equal(t, 40.0, cfg.Rules.WinTime)
	assert.Equal(t, 3.0, cfg.Rules.WinDelayTime)
	assert.Len(t, cfg.Intro.Slides, 4)
	assert.Len(t, cfg.Menu.MenuButtons(), 4)
	assert.Equal(t, RectConfig{X: 935, Y: 630, W: 100, H: 50}, cfg.Intro.SkipButton)
}

func TestGameConfig_PlayerBounds(t *testing.T) {
	cfg := loadDefault(t)

	b := cfg.PlayerBounds()
	assert.Equal(t, 520.0, cfg.RoadY())
	assert.Equal(t, 520.0, b.Top)
	assert.Equal(t, 595.0, b.Bottom)
	assert.Equal(t, 80.0, b.MinX)
	assert.Equal(t, 120.0, b.MaxX)
}

func TestLoader_TOMLMatchesYAML(t *testing.T) {
	want := loadDefault(t)

	data, err := toml.Marshal(want)
	require.NoError(t, err)

	fsys := fstest.MapFS{"game.toml": {Data: data}}
	got, err := NewFSLoader(fsys, ".").Load("game.toml")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json":  {Data: []byte(`{}`)},
		"broken.yml": {Data: []byte("window: [oops")},
		"empty.yaml": {Data: []byte("window: {width: 10, height: 10}")},
	}
	loader := NewFSLoader(fsys, ".")

	_, err := loader.Load("missing.yaml")
	assert.Error(t, err)

	_, err = loader.Load("game.json")
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = loader.Load("broken.yml")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = loader.Load("empty.yaml")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
		want   string
	}{
		{"zero width", func(c *GameConfig) { c.Window.Width = 0 }, "window size"},
		{"player taller than road", func(c *GameConfig) { c.Player.Size = 200 }, "player.size"},
		{"no slides", func(c *GameConfig) { c.Intro.Slides = nil }, "at least one slide"},
		{"zero win time", func(c *GameConfig) { c.Rules.WinTime = 0 }, "rules.winTime"},
		{"negative time limit", func(c *GameConfig) { c.Rules.TimeLimit = -1 }, "rules.timeLimit"},
		{"negative hitbox margin", func(c *GameConfig) { c.Barrier.HitboxMargin = -1 }, "barrier.hitboxMargin"},
		{"hitbox margin swallows barrier", func(c *GameConfig) { c.Barrier.HitboxMargin = 25 }, "barrier.hitboxMargin"},
		{"barrier cap", func(c *GameConfig) { c.Barrier.Max = 0 }, "barrier.max"},
		{"spawn interval", func(c *GameConfig) { c.Coin.SpawnInterval = 0 }, "spawn intervals"},
		{"volume", func(c *GameConfig) { c.Audio.MusicVolume = 1.5 }, "volumes"},
		{"parallax mismatch", func(c *GameConfig) { c.Background.Parallax = []float64{1} }, "parallax"},
		{"duplicate image id", func(c *GameConfig) {
			c.Assets.Images = append(c.Assets.Images, c.Assets.Images[0])
		}, "duplicate asset id"},
		{"asset without path", func(c *GameConfig) {
			c.Assets.Sounds = append(c.Assets.Sounds, AssetConfig{ID: "x"})
		}, "needs both id and path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadDefault(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	t.Run("image and sound may share an id", func(t *testing.T) {
		cfg := loadDefault(t)
		assert.NoError(t, cfg.Validate())
	})
}

func TestWatcher_Poll(t *testing.T) {
	src, err := os.ReadFile(filepath.Join(configDir, "game.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	w, err := NewWatcher(path, log.New(io.Discard))
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok, "no change yet")

	// siblings in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	_, ok = w.Poll()
	assert.False(t, ok)

	edited := strings.Replace(string(src), "winTime: 40", "winTime: 12", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	var got *GameConfig
	require.Eventually(t, func() bool {
		c, ok := w.Poll()
		if ok {
			got = c
		}
		return got != nil
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 12.0, got.Rules.WinTime)
}

func TestWatcher_RejectsInvalidEdit(t *testing.T) {
	src, err := os.ReadFile(filepath.Join(configDir, "game.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	w, err := NewWatcher(path, log.New(io.Discard))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("window: {width: -1}"), 0o644))

	deadline := time.Now().Add(300 * time.Millisecond)
	for time.Now().Before(deadline) {
		_, ok := w.Poll()
		require.False(t, ok)
		time.Sleep(10 * time.Millisecond)
	}
}
