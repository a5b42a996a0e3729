// Package intro provides the narrated slide show shown before a run.
package intro

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// Intro shows the configured slides in order. A slide ends when its
// narration stops playing or its maximum duration elapses.
type Intro struct {
	ctx     *scene.Context
	index   int
	timer   float64
	channel asset.Channel
}

// New creates the intro scene
func New(ctx *scene.Context) *Intro {
	return &Intro{ctx: ctx, channel: asset.NoChannel}
}

func (in *Intro) Screen() state.Screen { return state.Intro }

// Slide returns the current slide index
func (in *Intro) Slide() int { return in.index }

// SkipButton returns the skip control rect
func (in *Intro) SkipButton() entity.Rect {
	return in.ctx.Config.Intro.SkipButton.Rect()
}

func (in *Intro) HandleInput(ev system.Event) *scene.Transition {
	switch ev.Kind {
	case system.MouseClicked:
		if in.SkipButton().Contains(ev.Point()) {
			return in.skip("skip clicked")
		}
	case system.KeyPressed:
		switch ev.Key {
		case system.KeyEnter, system.KeyEscape:
			return in.skip(ev.Key.String() + " pressed")
		}
	}
	return nil
}

func (in *Intro) skip(reason string) *scene.Transition {
	in.stopNarration()
	return scene.To(state.Playing, reason)
}

func (in *Intro) Update(dt float64, _ system.Held) (*scene.Transition, error) {
	slides := in.ctx.Config.Intro.Slides
	if in.index >= len(slides) {
		return scene.To(state.Playing, "intro finished"), nil
	}

	in.timer += dt
	if in.ctx.Audio.IsChannelPlaying(in.channel) && in.timer < in.ctx.Config.Intro.SlideDuration {
		return nil, nil
	}

	in.stopNarration()
	in.index++
	if in.index >= len(slides) {
		return scene.To(state.Playing, "intro finished"), nil
	}
	in.startSlide()
	return nil, nil
}

func (in *Intro) startSlide() {
	in.timer = 0
	slide := in.ctx.Config.Intro.Slides[in.index]
	in.channel = asset.PlaySound(in.ctx.Audio, in.ctx.Resources.Sound(slide.Audio), asset.LoopOnce, in.ctx.Logger)
	in.ctx.Logger.Debug("intro slide", "index", in.index, "image", slide.Image)
}

func (in *Intro) stopNarration() {
	if in.channel != asset.NoChannel {
		in.ctx.Audio.StopChannel(in.channel)
		in.channel = asset.NoChannel
	}
}

func (in *Intro) Draw(c asset.Canvas) {
	slides := in.ctx.Config.Intro.Slides
	screen := in.ctx.FullScreen()
	c.FillRect(screen, scene.ColorBackground)
	if in.index >= len(slides) {
		return
	}

	slide := slides[in.index]
	asset.Blit(c, in.ctx.Resources.Texture(slide.Image), screen, scene.ColorPlaceholder)

	font := in.ctx.Resources.Font()
	c.DrawText(slide.Caption, 40, screen.Bottom()-font.Size()-70, font, scene.ColorText)

	skip := in.SkipButton()
	if tex := in.ctx.Resources.Texture(scene.ImageSkipButton); tex != nil {
		c.DrawTexture(tex, skip)
	} else {
		scene.Button{Label: "Skip", Rect: skip}.Draw(c, font, false)
	}
}

// OnEnter starts from the first slide
func (in *Intro) OnEnter(_ state.Screen) {
	in.index = 0
	if len(in.ctx.Config.Intro.Slides) > 0 {
		in.startSlide()
	}
}

// OnExit halts any narration still playing
func (in *Intro) OnExit(_ state.Screen) {
	in.stopNarration()
}

var _ scene.Scene = (*Intro)(nil)
