// Package game provides the screen state machine that drives the game loop.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/infrastructure/config"
)

// Clock is a monotonic time source
type Clock interface {
	Now() time.Duration
}

// ConfigSource delivers reloaded configs without blocking
type ConfigSource interface {
	Poll() (*config.GameConfig, bool)
}

// FrameRecorder receives every frame fed to the simulation
type FrameRecorder interface {
	RecordFrame(in system.InputState, dt float64)
}

// Reconfigurer is implemented by scenes holding state sized from the config
type Reconfigurer interface {
	Reconfigure()
}

// Options are the optional collaborators of a Game
type Options struct {
	Input    system.InputSource
	Clock    Clock
	Canvas   func(*ebiten.Image) asset.Canvas
	Watcher  ConfigSource
	Recorder FrameRecorder
}

// Game implements ebiten.Game. Each frame it routes input events to the
// active scene, updates it, and applies a requested transition before Draw,
// so a frame never renders half of two screens.
type Game struct {
	ctx     *scene.Context
	scenes  map[state.Screen]scene.Scene
	current scene.Scene
	screen  state.Screen
	opts    Options
	logger  *log.Logger
	music   string
	last    time.Duration
	started bool
	pending *config.GameConfig
	canvas  func(*ebiten.Image) asset.Canvas
}

// New creates a Game showing start. The start scene's OnEnter is called immediately.
func New(ctx *scene.Context, scenes []scene.Scene, start state.Screen, opts Options) (*Game, error) {
	g := &Game{
		ctx:    ctx,
		scenes: make(map[state.Screen]scene.Scene, len(scenes)),
		opts:   opts,
		logger: ctx.Logger.WithPrefix("game"),
		canvas: opts.Canvas,
	}
	for _, s := range scenes {
		g.scenes[s.Screen()] = s
	}
	if g.canvas == nil {
		null := &asset.Null{}
		g.canvas = func(*ebiten.Image) asset.Canvas { return null }
	}

	first, ok := g.scenes[start]
	if !ok {
		return nil, fmt.Errorf("no scene registered for start screen %s", start)
	}
	g.current = first
	g.screen = start
	g.updateMusic(start)
	first.OnEnter(start)
	return g, nil
}

// Screen returns the active screen
func (g *Game) Screen() state.Screen { return g.screen }

// Scene returns the active scene, nil after Exit
func (g *Game) Scene() scene.Scene {
	if g.screen.Terminal() {
		return nil
	}
	return g.current
}

// Update polls input and the clock and steps the state machine.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.opts.Watcher != nil {
		if cfg, ok := g.opts.Watcher.Poll(); ok {
			g.pending = cfg
			g.logger.Info("config reload queued until the menu")
		}
	}

	var in system.InputState
	if g.opts.Input != nil {
		in = g.opts.Input.Poll()
	}
	dt := g.delta()
	if g.opts.Recorder != nil {
		g.opts.Recorder.RecordFrame(in, dt)
	}
	return g.Step(in, dt)
}

// Step runs one frame with the given input and delta: events first, then
// the update when no event asked to leave, then the transition.
// Returns ebiten.Termination once Exit is reached.
func (g *Game) Step(in system.InputState, dt float64) error {
	if g.screen.Terminal() {
		return ebiten.Termination
	}

	var req *scene.Transition
	for _, ev := range in.Events {
		if ev.Kind == system.Quit {
			req = scene.To(state.Exit, "window closed")
			break
		}
		if req = g.current.HandleInput(ev); req != nil {
			break
		}
	}

	if req == nil {
		var err error
		req, err = g.current.Update(dt, in.Held)
		if err != nil {
			return fmt.Errorf("%s update: %w", g.screen, err)
		}
	}

	if req != nil {
		g.apply(*req)
	}
	if g.screen.Terminal() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) apply(t scene.Transition) {
	from := g.screen
	if err := state.CheckTransition(from, t.Target); err != nil {
		g.logger.Warn("transition ignored", "err", err, "reason", t.Reason)
		return
	}
	next, ok := g.scenes[t.Target]
	if !ok && !t.Target.Terminal() {
		g.logger.Warn("transition ignored", "err", errors.New("no scene registered"), "to", t.Target)
		return
	}

	g.logger.Info("transition", "from", from, "to", t.Target, "reason", t.Reason)
	g.current.OnExit(t.Target)
	g.screen = t.Target

	if t.Target == state.Menu && g.pending != nil {
		g.reconfigure()
	}
	g.updateMusic(t.Target)

	if next != nil {
		g.current = next
		next.OnEnter(from)
	}
}

func (g *Game) reconfigure() {
	*g.ctx.Config = *g.pending
	g.pending = nil
	for _, s := range g.scenes {
		if r, ok := s.(Reconfigurer); ok {
			r.Reconfigure()
		}
	}
	g.logger.Info("config reloaded")
}

// musicFor returns the music id for a screen, empty for silence
func (g *Game) musicFor(s state.Screen) string {
	switch s {
	case state.Menu, state.About, state.CharacterSelect:
		return g.ctx.Config.Menu.Music
	default:
		return ""
	}
}

func (g *Game) updateMusic(s state.Screen) {
	id := g.musicFor(s)
	if id == g.music {
		return
	}
	g.music = id
	if id == "" {
		g.ctx.Audio.StopMusic()
		return
	}
	asset.PlayMusic(g.ctx.Audio, g.ctx.Resources.Music(id), g.logger)
}

// delta measures the frame time from the clock, clamped to
// [0, Timing.MaxFrameDelta]. The first frame and clockless games use 1/TPS.
func (g *Game) delta() float64 {
	fixed := 1.0 / 60.0
	if tps := g.ctx.Config.Window.TPS; tps > 0 {
		fixed = 1.0 / float64(tps)
	}
	if g.opts.Clock == nil {
		return fixed
	}

	now := g.opts.Clock.Now()
	if !g.started {
		g.started = true
		g.last = now
		return fixed
	}
	dt := (now - g.last).Seconds()
	g.last = now
	return min(max(dt, 0), g.ctx.Config.Timing.MaxFrameDelta)
}

// Draw renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen.Terminal() {
		return
	}
	g.current.Draw(g.canvas(screen))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.ctx.Config.Window.Width, g.ctx.Config.Window.Height
}

// Close stops the music and releases every asset
func (g *Game) Close() {
	g.ctx.Audio.StopMusic()
	g.ctx.Resources.Release()
}

// MonotonicClock measures time since its creation
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock started
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
