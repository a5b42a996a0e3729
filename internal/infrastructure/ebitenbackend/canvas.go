package ebitenbackend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// fallbackFace is used when a font handle carries no face
var fallbackFace = text.NewGoXFace(basicfont.Face7x13)

// Canvas draws onto one frame's screen image.
type Canvas struct {
	screen *ebiten.Image
}

var _ asset.Canvas = (*Canvas)(nil)

// NewCanvas wraps screen. Game passes it as Options.Canvas.
func NewCanvas(screen *ebiten.Image) asset.Canvas {
	return &Canvas{screen: screen}
}

// DrawTexture scales t to fill dst
func (c *Canvas) DrawTexture(t *asset.Texture, dst entity.Rect) {
	if t == nil {
		return
	}
	img, ok := t.Native().(*ebiten.Image)
	if !ok {
		return
	}
	w, h := t.Size()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(w), dst.H/float64(h))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(img, op)
}

func (c *Canvas) FillRect(dst entity.Rect, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), clr, false)
}

// DrawText draws s with its top-left corner at (x, y)
func (c *Canvas) DrawText(s string, x, y float64, f *asset.Font, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, face(f), op)
}

func face(f *asset.Font) text.Face {
	if tf, ok := f.Native().(text.Face); ok {
		return tf
	}
	return fallbackFace
}
