package system

import (
	"math/rand"

	"github.com/younwookim/motogame/internal/domain/entity"
	"github.com/younwookim/motogame/internal/infrastructure/config"
)

// Outcome is the result of a world step
type Outcome int

const (
	Running Outcome = iota
	Won             // win time reached
	LostCollision   // hit a barrier
	LostTimeUp      // time limit reached first
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Running:
		return "Running"
	case Won:
		return "Won"
	case LostCollision:
		return "LostCollision"
	case LostTimeUp:
		return "LostTimeUp"
	default:
		return "Unknown"
	}
}

// StepResult reports what happened during one step
type StepResult struct {
	Outcome   Outcome
	Collected int // coins picked up this step
}

// World is the gameplay state shared by the Playing and WinDelay screens.
// It owns the player, both entity pools, the timers and the background.
type World struct {
	cfg    *config.GameConfig
	input  *InputSystem
	spawns *SpawnSystem

	Player     entity.Player
	Barriers   *entity.Pool[entity.Barrier]
	Coins      *entity.Pool[entity.Coin]
	Background *entity.Background

	Elapsed       float64 // seconds since Playing started
	WinDelayTimer float64
	Collected     int

	outcome Outcome
}

// NewWorld creates a world. rng drives lanes, variants and coin heights.
func NewWorld(cfg *config.GameConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:    cfg,
		input:  NewInputSystem(),
		spawns: NewSpawnSystem(cfg, rng),
	}
	w.build()
	w.Reset(entity.CharacterOne)
	return w
}

func (w *World) build() {
	w.Barriers = entity.NewPool[entity.Barrier](w.cfg.Barrier.Max)
	w.Coins = entity.NewPool[entity.Coin](w.cfg.Coin.Max)
	// layers are drawn stretched to the window, so they wrap at its width
	w.Background = entity.NewBackground(
		float64(w.cfg.Window.Width), w.cfg.Background.ScrollSpeed, w.cfg.Background.Parallax...)
}

// Reconfigure resizes the pools and background after the config changed
// in place, and starts a new run.
func (w *World) Reconfigure() {
	w.build()
	w.Reset(w.Player.Character)
}

// Config returns the config the world was built with
func (w *World) Config() *config.GameConfig { return w.cfg }

// Reset starts a new run with the given character
func (w *World) Reset(ch entity.Character) {
	p := w.cfg.Player
	w.Player = *entity.NewPlayer(p.StartX, w.cfg.RoadY(), p.Size, p.VertSpeed, p.HorizSpeed, w.cfg.PlayerBounds(), ch)
	w.Barriers.Reset()
	w.Coins.Reset()
	w.Background.Reset()
	w.spawns.Reset()
	w.Elapsed = 0
	w.WinDelayTimer = 0
	w.Collected = 0
	w.outcome = Running
}

// Outcome returns the latched outcome of the run
func (w *World) Outcome() Outcome { return w.outcome }

// Remaining returns the seconds left until the win time
func (w *World) Remaining() float64 {
	return max(w.cfg.Rules.WinTime-w.Elapsed, 0)
}

// Step advances one Playing frame. Once the run has an outcome further
// calls do nothing and return Running with no coins.
func (w *World) Step(dt float64, held Held) StepResult {
	if w.outcome != Running {
		return StepResult{}
	}
	dt = max(dt, 0)

	// 1. timers
	w.Elapsed += dt
	if w.Elapsed >= w.cfg.Rules.WinTime {
		return w.finish(Won, 0)
	}
	if limit := w.cfg.Rules.TimeLimit; limit > 0 && w.Elapsed >= limit {
		return w.finish(LostTimeUp, 0)
	}

	// 2. player
	w.input.UpdatePlayer(&w.Player, held, dt)

	// 3, 4. spawning
	w.spawns.Update(dt, w.Barriers, w.Coins)

	// 5. barriers
	if w.moveBarriers(dt, true) {
		return w.finish(LostCollision, 0)
	}

	// 6. coins
	collected := w.moveCoins(dt, true)
	w.Collected += collected

	// 7. background
	w.Background.Advance(dt)

	return StepResult{Outcome: Running, Collected: collected}
}

// StepWinDelay advances one WinDelay frame: motion continues but nothing
// spawns or collides. It reports whether the delay has elapsed.
func (w *World) StepWinDelay(dt float64, held Held) bool {
	dt = max(dt, 0)
	w.WinDelayTimer += dt

	w.input.UpdatePlayer(&w.Player, held, dt)
	w.moveBarriers(dt, false)
	w.moveCoins(dt, false)
	w.Background.Advance(dt)

	return w.WinDelayTimer >= w.cfg.Rules.WinDelayTime
}

func (w *World) finish(o Outcome, collected int) StepResult {
	w.outcome = o
	return StepResult{Outcome: o, Collected: collected}
}

// moveBarriers advances and culls barriers. With collide set it stops at the
// first barrier whose shrunk hitbox overlaps the player and reports the hit.
func (w *World) moveBarriers(dt float64, collide bool) bool {
	player := w.Player.Rect()
	speed := w.cfg.Barrier.Speed
	margin := w.cfg.Barrier.HitboxMargin
	hit := false

	w.Barriers.Each(func(i int, b *entity.Barrier) bool {
		b.Advance(speed, dt)
		if b.OffScreen() {
			w.Barriers.Release(i)
			return true
		}
		if collide && b.Hitbox(margin).Intersects(player) {
			w.Barriers.Release(i)
			hit = true
			return false
		}
		return true
	})
	return hit
}

// moveCoins advances and culls coins, collecting those touching the player.
// A collected coin is released, so each coin counts once.
func (w *World) moveCoins(dt float64, collide bool) int {
	player := w.Player.Rect()
	speed := w.cfg.Coin.Speed
	n := 0

	w.Coins.Each(func(i int, c *entity.Coin) bool {
		c.Advance(speed, dt)
		if c.OffScreen() {
			w.Coins.Release(i)
			return true
		}
		if collide && c.Rect().Intersects(player) {
			w.Coins.Release(i)
			n++
		}
		return true
	})
	return n
}
