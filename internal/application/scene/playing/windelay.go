package playing

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

// WinDelay keeps the world moving for a moment after the win, without
// spawning or collisions, then shows the Win screen.
type WinDelay struct {
	ctx   *scene.Context
	world *system.World
}

// NewWinDelay creates the WinDelay scene over the Playing world
func NewWinDelay(ctx *scene.Context, world *system.World) *WinDelay {
	return &WinDelay{ctx: ctx, world: world}
}

func (w *WinDelay) Screen() state.Screen { return state.WinDelay }

func (w *WinDelay) HandleInput(system.Event) *scene.Transition { return nil }

func (w *WinDelay) Update(dt float64, held system.Held) (*scene.Transition, error) {
	if !w.world.StepWinDelay(dt, held) {
		return nil, nil
	}
	w.ctx.Session.EndRun(true, w.world.Collected)
	return scene.To(state.Win, "win delay elapsed"), nil
}

func (w *WinDelay) Draw(c asset.Canvas) {
	drawWorld(w.ctx, w.world, c)
	drawHUD(w.ctx, w.world, c)

	font := w.ctx.Resources.Font()
	screen := w.ctx.FullScreen()
	c.DrawText("FINISH!", screen.W/2-60, screen.H/3, font, scene.ColorAccent)
}

// OnEnter restarts the delay timer
func (w *WinDelay) OnEnter(state.Screen) {
	w.world.WinDelayTimer = 0
}

func (w *WinDelay) OnExit(state.Screen) {}

var _ scene.Scene = (*WinDelay)(nil)
