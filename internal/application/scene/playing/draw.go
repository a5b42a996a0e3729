package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// Placeholder colors for absent sprites
var (
	colorRoad    = color.RGBA{60, 60, 70, 255}
	colorSky     = color.RGBA{40, 50, 90, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorBarrier = color.RGBA{200, 50, 50, 255}
	colorCoin    = color.RGBA{255, 215, 0, 255}
)

func drawWorld(ctx *scene.Context, w *system.World, c asset.Canvas) {
	cfg := ctx.Config
	screen := ctx.FullScreen()
	c.FillRect(screen, colorSky)
	c.FillRect(entity.NewRect(0, cfg.RoadY(), screen.W, cfg.Road.Height), colorRoad)

	// each layer is drawn twice side by side so the wrap is seamless
	for i, layer := range w.Background.Layers {
		if i >= len(cfg.Background.Layers) {
			break
		}
		tex := ctx.Resources.Texture(cfg.Background.Layers[i])
		if tex == nil {
			continue
		}
		first, second := layer.DrawX()
		c.DrawTexture(tex, entity.NewRect(first, 0, layer.Width, screen.H))
		c.DrawTexture(tex, entity.NewRect(second, 0, layer.Width, screen.H))
	}

	w.Coins.Each(func(_ int, coin *entity.Coin) bool {
		asset.Blit(c, ctx.Resources.Texture(scene.ImageCoin), coin.Rect(), colorCoin)
		return true
	})
	w.Barriers.Each(func(_ int, b *entity.Barrier) bool {
		asset.Blit(c, ctx.Resources.Texture(scene.BarrierImage(b.Variant)), b.Rect(), colorBarrier)
		return true
	})

	asset.Blit(c, ctx.Resources.Texture(scene.PlayerImage(w.Player.Character)), w.Player.Rect(), colorPlayer)
}

func drawHUD(ctx *scene.Context, w *system.World, c asset.Canvas) {
	font := ctx.Resources.Font()
	c.DrawText(fmt.Sprintf("Time: %d", int(math.Ceil(w.Remaining()))), 20, 20, font, scene.ColorText)
	c.DrawText(fmt.Sprintf("Coins: %d", w.Collected), 20, 20+font.Size()+8, font, scene.ColorAccent)
}
