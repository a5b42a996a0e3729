package system

import (
	"math/rand"

	"github.com/younwookim/motogame/internal/infrastructure/config"
)

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Window:  config.WindowConfig{Width: 1045, Height: 690},
		Road:    config.RoadConfig{Height: 170},
		Player:  config.PlayerConfig{Size: 95, StartX: 100, VertSpeed: 300, HorizSpeed: 100, HorizMoveRange: 20},
		Barrier: config.BarrierConfig{Width: 50, Height: 50, Speed: 400, SpawnInterval: 2, Max: 5, HitboxMargin: 10},
		Coin:    config.CoinConfig{Width: 25, Height: 25, Speed: 400, SpawnInterval: 1.5, Max: 8},
		Rules:   config.RulesConfig{WinTime: 40, WinDelayTime: 3},
		Background: config.BackgroundConfig{
			ScrollSpeed: 200,
			Parallax:    []float64{0.5, 1},
			Layers:      []string{"far", "near"},
		},
	}
}

// quietConfig never spawns on its own.
func quietConfig() *config.GameConfig {
	cfg := createTestConfig()
	cfg.Barrier.SpawnInterval = 1e9
	cfg.Coin.SpawnInterval = 1e9
	return cfg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}
