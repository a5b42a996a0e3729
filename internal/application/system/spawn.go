package system

import (
	"math/rand"

	"github.com/younwookim/motogame/internal/domain/entity"
	"github.com/younwookim/motogame/internal/infrastructure/config"
)

// Lane is one of the two barrier rows of the road band
type Lane int

const (
	LaneTop Lane = iota
	LaneBottom
)

// SpawnSystem spawns barriers and coins at the right edge on fixed intervals
type SpawnSystem struct {
	cfg          *config.GameConfig
	rng          *rand.Rand
	barrierTimer float64
	coinTimer    float64
}

// NewSpawnSystem creates a spawn system drawing from rng
func NewSpawnSystem(cfg *config.GameConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{cfg: cfg, rng: rng}
}

// Reset zeroes both spawn timers
func (s *SpawnSystem) Reset() {
	s.barrierTimer = 0
	s.coinTimer = 0
}

// Update advances the spawn timers and spawns when an interval is reached.
// The timer resets to zero on every threshold, spawned or not.
func (s *SpawnSystem) Update(dt float64, barriers *entity.Pool[entity.Barrier], coins *entity.Pool[entity.Coin]) {
	s.barrierTimer += dt
	if s.barrierTimer >= s.cfg.Barrier.SpawnInterval {
		if barriers.ActiveCount() < s.cfg.Barrier.Max {
			barriers.Spawn(s.newBarrier())
		}
		s.barrierTimer = 0
	}

	s.coinTimer += dt
	if s.coinTimer >= s.cfg.Coin.SpawnInterval {
		if coins.ActiveCount() < s.cfg.Coin.Max {
			coins.Spawn(s.newCoin())
		}
		s.coinTimer = 0
	}
}

func (s *SpawnSystem) newBarrier() entity.Barrier {
	b := s.cfg.Barrier
	return entity.Barrier{
		X:       float64(s.cfg.Window.Width),
		Y:       s.LaneY(Lane(s.rng.Intn(2))),
		W:       b.Width,
		H:       b.Height,
		Variant: s.rng.Intn(entity.BarrierVariants),
	}
}

func (s *SpawnSystem) newCoin() entity.Coin {
	c := s.cfg.Coin
	top := s.cfg.RoadY()
	span := s.cfg.Road.Height - c.Height
	return entity.Coin{
		X: float64(s.cfg.Window.Width),
		Y: top + s.rng.Float64()*span,
		W: c.Width,
		H: c.Height,
	}
}

// LaneY returns the barrier y for a lane: flush with the top or the bottom of the road
func (s *SpawnSystem) LaneY(l Lane) float64 {
	if l == LaneTop {
		return s.cfg.RoadY()
	}
	return s.cfg.RoadY() + s.cfg.Road.Height - s.cfg.Barrier.Height
}
