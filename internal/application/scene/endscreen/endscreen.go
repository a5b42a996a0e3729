// Package endscreen provides the Win and Lose screens.
package endscreen

import (
	"fmt"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

// EndScreen shows the result of a run until any key or click
type EndScreen struct {
	ctx    *scene.Context
	screen state.Screen
	image  string
	title  string
	sound  string
}

// NewWin creates the Win screen. The win stinger plays on entry.
func NewWin(ctx *scene.Context) *EndScreen {
	return &EndScreen{ctx: ctx, screen: state.Win, image: scene.ImageWin, title: "YOU WIN", sound: scene.SoundWin}
}

// NewLose creates the Lose screen. The lose sound is played by the run itself.
func NewLose(ctx *scene.Context) *EndScreen {
	return &EndScreen{ctx: ctx, screen: state.Lose, image: scene.ImageLose, title: "GAME OVER"}
}

func (e *EndScreen) Screen() state.Screen { return e.screen }

func (e *EndScreen) HandleInput(ev system.Event) *scene.Transition {
	switch ev.Kind {
	case system.KeyPressed, system.MouseClicked:
		return scene.To(state.Menu, "dismissed")
	}
	return nil
}

func (e *EndScreen) Update(float64, system.Held) (*scene.Transition, error) {
	return nil, nil
}

func (e *EndScreen) Draw(c asset.Canvas) {
	screen := e.ctx.FullScreen()
	asset.Blit(c, e.ctx.Resources.Texture(e.image), screen, scene.ColorBackground)

	font := e.ctx.Resources.Font()
	cx := screen.W/2 - 120
	c.DrawText(e.title, cx, screen.H/3, font, scene.ColorAccent)
	c.DrawText(fmt.Sprintf("Coins collected: %d", e.ctx.Session.LastCoins), cx, screen.H/3+font.Size()*2, font, scene.ColorText)
	c.DrawText("Press any key", cx, screen.H-80, font, scene.ColorText)
}

func (e *EndScreen) OnEnter(state.Screen) {
	if e.sound != "" {
		asset.PlaySound(e.ctx.Audio, e.ctx.Resources.Sound(e.sound), asset.LoopOnce, e.ctx.Logger)
	}
	e.ctx.Logger.Info("run ended", "run", e.ctx.Session.RunID, "result", e.screen, "coins", e.ctx.Session.LastCoins)
}

func (e *EndScreen) OnExit(state.Screen) {}

var _ scene.Scene = (*EndScreen)(nil)
