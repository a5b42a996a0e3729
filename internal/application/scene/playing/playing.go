// Package playing provides the gameplay scenes: Playing and the WinDelay
// grace period that follows a win. Both drive the same system.World.
package playing

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

// Playing is the main gameplay scene
type Playing struct {
	ctx   *scene.Context
	world *system.World
}

// New creates the Playing scene over world
func New(ctx *scene.Context, world *system.World) *Playing {
	return &Playing{ctx: ctx, world: world}
}

func (p *Playing) Screen() state.Screen { return state.Playing }

// World returns the simulated world
func (p *Playing) World() *system.World { return p.world }

func (p *Playing) HandleInput(system.Event) *scene.Transition { return nil }

// Update proceeds the simulation and turns its outcome into a transition
func (p *Playing) Update(dt float64, held system.Held) (*scene.Transition, error) {
	res := p.world.Step(dt, held)

	for range res.Collected {
		asset.PlaySound(p.ctx.Audio, p.ctx.Resources.Sound(scene.SoundCoin), asset.LoopOnce, p.ctx.Logger)
	}

	switch res.Outcome {
	case system.Won:
		return scene.To(state.WinDelay, "win time reached"), nil
	case system.LostCollision:
		return p.lose("barrier hit"), nil
	case system.LostTimeUp:
		return p.lose("time up"), nil
	}
	return nil, nil
}

func (p *Playing) lose(reason string) *scene.Transition {
	asset.PlaySound(p.ctx.Audio, p.ctx.Resources.Sound(scene.SoundLose), asset.LoopOnce, p.ctx.Logger)
	p.ctx.Session.EndRun(false, p.world.Collected)
	return scene.To(state.Lose, reason)
}

func (p *Playing) Draw(c asset.Canvas) {
	drawWorld(p.ctx, p.world, c)
	drawHUD(p.ctx, p.world, c)
}

// OnEnter starts a fresh run when coming from the intro or character select
func (p *Playing) OnEnter(from state.Screen) {
	if from != state.Intro && from != state.CharacterSelect {
		return
	}
	p.world.Reset(p.ctx.Session.Character)
	id := p.ctx.Session.StartRun()
	p.ctx.Logger.Info("run started", "run", id, "character", p.ctx.Session.Character)
}

func (p *Playing) OnExit(to state.Screen) {
	p.ctx.Logger.Debug("run paused", "to", to, "elapsed", p.world.Elapsed, "coins", p.world.Collected)
}

// Reconfigure picks up an updated config
func (p *Playing) Reconfigure() {
	p.world.Reconfigure()
}

var _ scene.Scene = (*Playing)(nil)
