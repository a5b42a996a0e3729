// Package about provides the credits screen.
package about

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

var credits = []string{
	"Ride for as long as the clock asks.",
	"Up / Down to change lane, Left / Right to lean.",
	"Dodge the barriers, grab the coins.",
	"",
	"Built with Ebitengine.",
}

// About shows the credits until any key or click
type About struct {
	ctx *scene.Context
}

func New(ctx *scene.Context) *About {
	return &About{ctx: ctx}
}

func (a *About) Screen() state.Screen { return state.About }

func (a *About) HandleInput(ev system.Event) *scene.Transition {
	if ev.Kind == system.KeyPressed || ev.Kind == system.MouseClicked {
		return scene.To(state.Menu, "dismissed")
	}
	return nil
}

func (a *About) Update(float64, system.Held) (*scene.Transition, error) { return nil, nil }

func (a *About) Draw(c asset.Canvas) {
	asset.Blit(c, a.ctx.Resources.Texture(scene.ImageAbout), a.ctx.FullScreen(), scene.ColorBackground)

	font := a.ctx.Resources.Font()
	y := 150.0
	for _, line := range credits {
		c.DrawText(line, 80, y, font, scene.ColorText)
		y += font.Size() * 1.5
	}
}

func (a *About) OnEnter(state.Screen) {}
func (a *About) OnExit(state.Screen)  {}

var _ scene.Scene = (*About)(nil)
