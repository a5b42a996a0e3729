package config

import "github.com/younwookim/motogame/internal/domain/entity"

// GameConfig is the root config for game.yaml / game.toml
type GameConfig struct {
	Window          WindowConfig          `yaml:"window" toml:"window"`
	Timing          TimingConfig          `yaml:"timing" toml:"timing"`
	Road            RoadConfig            `yaml:"road" toml:"road"`
	Player          PlayerConfig          `yaml:"player" toml:"player"`
	Barrier         BarrierConfig         `yaml:"barrier" toml:"barrier"`
	Coin            CoinConfig            `yaml:"coin" toml:"coin"`
	Rules           RulesConfig           `yaml:"rules" toml:"rules"`
	Background      BackgroundConfig      `yaml:"background" toml:"background"`
	Menu            MenuConfig            `yaml:"menu" toml:"menu"`
	Intro           IntroConfig           `yaml:"intro" toml:"intro"`
	CharacterSelect CharacterSelectConfig `yaml:"characterSelect" toml:"characterSelect"`
	Audio           AudioConfig           `yaml:"audio" toml:"audio"`
	Assets          AssetsConfig          `yaml:"assets" toml:"assets"`
}

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	TPS    int    `yaml:"tps" toml:"tps"`
}

// TimingConfig bounds the frame delta fed to the simulation
type TimingConfig struct {
	MaxFrameDelta float64 `yaml:"maxFrameDelta" toml:"maxFrameDelta"` // seconds
}

type RoadConfig struct {
	Height float64 `yaml:"height" toml:"height"` // road band height, anchored to the bottom of the window
}

type PlayerConfig struct {
	Size           float64 `yaml:"size" toml:"size"`
	StartX         float64 `yaml:"startX" toml:"startX"`
	VertSpeed      float64 `yaml:"vertSpeed" toml:"vertSpeed"`
	HorizSpeed     float64 `yaml:"horizSpeed" toml:"horizSpeed"` // 0 disables horizontal movement
	HorizMoveRange float64 `yaml:"horizMoveRange" toml:"horizMoveRange"`
}

type BarrierConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	SpawnInterval float64 `yaml:"spawnInterval" toml:"spawnInterval"`
	Max           int     `yaml:"max" toml:"max"`
	HitboxMargin  float64 `yaml:"hitboxMargin" toml:"hitboxMargin"`
}

type CoinConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	SpawnInterval float64 `yaml:"spawnInterval" toml:"spawnInterval"`
	Max           int     `yaml:"max" toml:"max"`
}

type RulesConfig struct {
	WinTime      float64 `yaml:"winTime" toml:"winTime"`
	WinDelayTime float64 `yaml:"winDelayTime" toml:"winDelayTime"`
	TimeLimit    float64 `yaml:"timeLimit" toml:"timeLimit"` // 0 = no limit
}

type BackgroundConfig struct {
	ScrollSpeed float64   `yaml:"scrollSpeed" toml:"scrollSpeed"`
	Parallax    []float64 `yaml:"parallax" toml:"parallax"` // speed factor per layer, far to near
	Layers      []string  `yaml:"layers" toml:"layers"`     // image id per layer, far to near
}

type RectConfig struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
	W int `yaml:"w" toml:"w"`
	H int `yaml:"h" toml:"h"`
}

// Rect converts the config rect to an entity rect
func (r RectConfig) Rect() entity.Rect {
	return entity.NewRect(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}

type ButtonConfig struct {
	Label string     `yaml:"label" toml:"label"`
	Rect  RectConfig `yaml:"rect" toml:"rect"`
}

type MenuConfig struct {
	Play      ButtonConfig `yaml:"play" toml:"play"`
	Character ButtonConfig `yaml:"character" toml:"character"`
	About     ButtonConfig `yaml:"about" toml:"about"`
	Quit      ButtonConfig `yaml:"quit" toml:"quit"`
	Frames    []string     `yaml:"frames" toml:"frames"`       // background animation image ids
	AnimSpeed float64      `yaml:"animSpeed" toml:"animSpeed"` // seconds per frame
	Music     string       `yaml:"music" toml:"music"`
}

type SlideConfig struct {
	Image   string `yaml:"image" toml:"image"`
	Audio   string `yaml:"audio" toml:"audio"`
	Caption string `yaml:"caption" toml:"caption"`
}

type IntroConfig struct {
	SlideDuration float64       `yaml:"slideDuration" toml:"slideDuration"` // max seconds per slide
	Slides        []SlideConfig `yaml:"slides" toml:"slides"`
	SkipButton    RectConfig    `yaml:"skipButton" toml:"skipButton"`
}

type CharacterSelectConfig struct {
	Previews []RectConfig `yaml:"previews" toml:"previews"` // one per character
}

type AudioConfig struct {
	SampleRate  int     `yaml:"sampleRate" toml:"sampleRate"`
	MusicVolume float64 `yaml:"musicVolume" toml:"musicVolume"`
	SoundVolume float64 `yaml:"soundVolume" toml:"soundVolume"`
}

// AssetConfig is one entry of the asset manifest
type AssetConfig struct {
	ID       string `yaml:"id" toml:"id"`
	Path     string `yaml:"path" toml:"path"` // relative to AssetsConfig.BasePath
	Required bool   `yaml:"required" toml:"required"`
}

type FontConfig struct {
	Path string  `yaml:"path" toml:"path"`
	Size float64 `yaml:"size" toml:"size"`
}

type AssetsConfig struct {
	BasePath string        `yaml:"basePath" toml:"basePath"`
	Font     FontConfig    `yaml:"font" toml:"font"`
	Images   []AssetConfig `yaml:"images" toml:"images"`
	Sounds   []AssetConfig `yaml:"sounds" toml:"sounds"`
	Music    []AssetConfig `yaml:"music" toml:"music"`
}

// RoadY returns the top of the road band
func (c *GameConfig) RoadY() float64 {
	return float64(c.Window.Height) - c.Road.Height
}

// PlayerBounds derives the player limits from the road geometry
func (c *GameConfig) PlayerBounds() entity.PlayerBounds {
	top := c.RoadY()
	return entity.PlayerBounds{
		Top:    top,
		Bottom: top + c.Road.Height - c.Player.Size,
		MinX:   c.Player.StartX - c.Player.HorizMoveRange,
		MaxX:   c.Player.StartX + c.Player.HorizMoveRange,
	}
}

// MenuButtons returns the menu buttons in focus order
func (m *MenuConfig) MenuButtons() []ButtonConfig {
	return []ButtonConfig{m.Play, m.Character, m.About, m.Quit}
}
