// Package scenetest builds scene contexts on fake backends.
package scenetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/asset/assettest"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/infrastructure/config"
	"github.com/younwookim/motogame/internal/infrastructure/logging"
)

// Harness is a scene context together with the fakes behind it
type Harness struct {
	Ctx    *scene.Context
	Loader *assettest.Loader
	Audio  *assettest.Audio
	Canvas *assettest.Canvas
}

// New loads Config() through a fake loader. Paths containing any of missing fail to load.
func New(t testing.TB, missing ...string) *Harness {
	t.Helper()

	cfg := Config()
	loader := &assettest.Loader{Missing: missing}
	logger := logging.Discard()

	res, err := asset.Load(loader, cfg.Assets, logger)
	require.NoError(t, err)

	audio := &assettest.Audio{}
	return &Harness{
		Ctx: &scene.Context{
			Config:    cfg,
			Resources: res,
			Audio:     audio,
			Session:   scene.NewSession(),
			Logger:    logger,
		},
		Loader: loader,
		Audio:  audio,
		Canvas: &assettest.Canvas{},
	}
}

func rect(x, y, w, h int) config.RectConfig {
	return config.RectConfig{X: x, Y: y, W: w, H: h}
}

func img(id, path string) config.AssetConfig {
	return config.AssetConfig{ID: id, Path: path}
}

// Config returns the default game config
func Config() *config.GameConfig {
	return &config.GameConfig{
		Window:  config.WindowConfig{Title: "test", Width: 1045, Height: 690, TPS: 60},
		Timing:  config.TimingConfig{MaxFrameDelta: 0.1},
		Road:    config.RoadConfig{Height: 170},
		Player:  config.PlayerConfig{Size: 95, StartX: 100, VertSpeed: 300, HorizSpeed: 100, HorizMoveRange: 20},
		Barrier: config.BarrierConfig{Width: 50, Height: 50, Speed: 400, SpawnInterval: 2, Max: 5, HitboxMargin: 10},
		Coin:    config.CoinConfig{Width: 25, Height: 25, Speed: 400, SpawnInterval: 1.5, Max: 8},
		Rules:   config.RulesConfig{WinTime: 40, WinDelayTime: 3},
		Background: config.BackgroundConfig{
			ScrollSpeed: 200,
			Parallax:    []float64{0.5, 1},
			Layers:      []string{"bg_far", "bg_road"},
		},
		Menu: config.MenuConfig{
			Play:      config.ButtonConfig{Label: "Play", Rect: rect(50, 200, 250, 100)},
			Character: config.ButtonConfig{Label: "Character", Rect: rect(50, 320, 250, 100)},
			About:     config.ButtonConfig{Label: "About", Rect: rect(50, 440, 250, 100)},
			Quit:      config.ButtonConfig{Label: "Quit", Rect: rect(50, 560, 250, 100)},
			Frames:    []string{"menu_1", "menu_2", "menu_3", "menu_4"},
			AnimSpeed: 0.25,
			Music:     "menu_music",
		},
		Intro: config.IntroConfig{
			SlideDuration: 22,
			SkipButton:    rect(935, 630, 100, 50),
			Slides: []config.SlideConfig{
				{Image: "intro_slide_1", Audio: "intro_1", Caption: "one"},
				{Image: "intro_slide_2", Audio: "intro_2", Caption: "two"},
				{Image: "intro_slide_3", Audio: "intro_3", Caption: "three"},
				{Image: "intro_slide_4", Audio: "intro_4", Caption: "four"},
			},
		},
		CharacterSelect: config.CharacterSelectConfig{
			Previews: []config.RectConfig{rect(272, 245, 200, 200), rect(572, 245, 200, 200)},
		},
		Audio: config.AudioConfig{SampleRate: 44100, MusicVolume: 0.6, SoundVolume: 1},
		Assets: config.AssetsConfig{
			BasePath: "assets",
			Font:     config.FontConfig{Path: "fonts/game_font.ttf", Size: 24},
			Images: []config.AssetConfig{
				img("player_character-01", "images/characters/player_01.png"),
				img("player_character-02", "images/characters/player_02.png"),
				img("bg_road", "images/background/road.png"),
				img("bg_far", "images/background/far.png"),
				img("menu_1", "images/menu/menu_1.png"),
				img("menu_2", "images/menu/menu_2.png"),
				img("menu_3", "images/menu/menu_3.png"),
				img("menu_4", "images/menu/menu_4.png"),
				img("intro_slide_1", "images/intro/slide_1.png"),
				img("intro_slide_2", "images/intro/slide_2.png"),
				img("intro_slide_3", "images/intro/slide_3.png"),
				img("intro_slide_4", "images/intro/slide_4.png"),
				img("skip_button", "images/intro/skip.png"),
				img("preview_character-01", "images/characters/preview_01.png"),
				img("preview_character-02", "images/characters/preview_02.png"),
				img("barrier_0", "images/barriers/barrier_0.png"),
				img("barrier_1", "images/barriers/barrier_1.png"),
				img("barrier_2", "images/barriers/barrier_2.png"),
				img("coin", "images/coin.png"),
				img("about", "images/about.png"),
				img("win", "images/win.png"),
				img("lose", "images/lose.png"),
			},
			Sounds: []config.AssetConfig{
				img("intro_1", "audio/intro_slide_1.wav"),
				img("intro_2", "audio/intro_slide_2.wav"),
				img("intro_3", "audio/intro_slide_3.wav"),
				img("intro_4", "audio/intro_slide_4.wav"),
				img("win", "audio/win.wav"),
				img("lose", "audio/lose.wav"),
				img("coin", "audio/coin.wav"),
				img("click", "audio/click.wav"),
			},
			Music: []config.AssetConfig{img("menu_music", "audio/menu_music.ogg")},
		},
	}
}
