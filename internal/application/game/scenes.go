package game

import (
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/scene/about"
	"github.com/younwookim/motogame/internal/application/scene/charselect"
	"github.com/younwookim/motogame/internal/application/scene/endscreen"
	"github.com/younwookim/motogame/internal/application/scene/intro"
	"github.com/younwookim/motogame/internal/application/scene/menu"
	"github.com/younwookim/motogame/internal/application/scene/playing"
	"github.com/younwookim/motogame/internal/application/system"
)

// Scenes builds one scene per screen. Playing and WinDelay share world.
func Scenes(ctx *scene.Context, world *system.World) []scene.Scene {
	return []scene.Scene{
		menu.New(ctx),
		intro.New(ctx),
		charselect.New(ctx),
		playing.New(ctx, world),
		playing.NewWinDelay(ctx, world),
		endscreen.NewWin(ctx),
		endscreen.NewLose(ctx),
		about.New(ctx),
	}
}
