package scene

import (
	"image/color"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// Palette shared by the screens
var (
	ColorBackground  = color.RGBA{20, 20, 32, 255}
	ColorPlaceholder = color.RGBA{90, 90, 110, 255}
	ColorButton      = color.RGBA{60, 60, 90, 255}
	ColorButtonHover = color.RGBA{110, 110, 170, 255}
	ColorText        = color.White
	ColorAccent      = color.RGBA{255, 215, 0, 255}
)

// Button is a clickable labelled rectangle
type Button struct {
	Label string
	Rect  entity.Rect
}

// Hit reports whether the point lies on the button
func (b Button) Hit(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// Draw draws the button, highlighted when focused
func (b Button) Draw(c asset.Canvas, font *asset.Font, focused bool) {
	fill := ColorButton
	if focused {
		fill = ColorButtonHover
	}
	c.FillRect(b.Rect, fill)
	x := b.Rect.X + 20
	y := b.Rect.Y + b.Rect.H/2 - font.Size()/2
	c.DrawText(b.Label, x, y, font, ColorText)
}

// FullScreen returns the window rect
func (ctx *Context) FullScreen() entity.Rect {
	return entity.NewRect(0, 0, float64(ctx.Config.Window.Width), float64(ctx.Config.Window.Height))
}
