// Package charselect provides the character selection scene.
package charselect

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
	"github.com/younwookim/motogame/internal/domain/entity"
)

// CharacterSelect lets the player pick a rider. Confirming stores the
// choice in the session; cancelling restores the one held on entry.
type CharacterSelect struct {
	ctx      *scene.Context
	choice   entity.Character
	previous entity.Character
}

// New creates the character select scene
func New(ctx *scene.Context) *CharacterSelect {
	return &CharacterSelect{ctx: ctx}
}

func (cs *CharacterSelect) Screen() state.Screen { return state.CharacterSelect }

// Choice returns the highlighted character
func (cs *CharacterSelect) Choice() entity.Character { return cs.choice }

func (cs *CharacterSelect) previews() []entity.Rect {
	cfgs := cs.ctx.Config.CharacterSelect.Previews
	rects := make([]entity.Rect, 0, len(cfgs))
	for _, r := range cfgs {
		rects = append(rects, r.Rect())
	}
	return rects
}

func (cs *CharacterSelect) HandleInput(ev system.Event) *scene.Transition {
	switch ev.Kind {
	case system.MouseClicked:
		for i, r := range cs.previews() {
			if i < len(entity.Characters) && r.Contains(ev.Point()) {
				cs.choice = entity.Characters[i]
				return cs.confirm()
			}
		}
	case system.KeyPressed:
		switch ev.Key {
		case system.KeyLeft:
			cs.choice = cs.choice.Prev()
		case system.KeyRight:
			cs.choice = cs.choice.Next()
		case system.KeyEnter:
			return cs.confirm()
		case system.KeyEscape:
			cs.ctx.Session.Select(cs.previous)
			return scene.To(state.Menu, "selection cancelled")
		}
	}
	return nil
}

func (cs *CharacterSelect) confirm() *scene.Transition {
	cs.ctx.Session.Select(cs.choice)
	asset.PlaySound(cs.ctx.Audio, cs.ctx.Resources.Sound(scene.SoundClick), asset.LoopOnce, cs.ctx.Logger)
	cs.ctx.Logger.Info("character selected", "character", cs.choice)
	return scene.To(state.Menu, "selection confirmed")
}

func (cs *CharacterSelect) Update(float64, system.Held) (*scene.Transition, error) {
	return nil, nil
}

func (cs *CharacterSelect) Draw(c asset.Canvas) {
	c.FillRect(cs.ctx.FullScreen(), scene.ColorBackground)
	font := cs.ctx.Resources.Font()
	c.DrawText("Choose your rider", 360, 120, font, scene.ColorAccent)

	for i, r := range cs.previews() {
		if i >= len(entity.Characters) {
			break
		}
		ch := entity.Characters[i]
		if ch == cs.choice {
			c.FillRect(entity.NewRect(r.X-8, r.Y-8, r.W+16, r.H+16), scene.ColorAccent)
		}
		asset.Blit(c, cs.ctx.Resources.Texture(scene.PreviewImage(ch)), r, scene.ColorPlaceholder)
		c.DrawText(ch.String(), r.X, r.Bottom()+16, font, scene.ColorText)
	}
	c.DrawText("Left/Right to choose, Enter to confirm, Esc to cancel", 240, 560, font, scene.ColorText)
}

// OnEnter highlights the current session character, or the first one
// when the session holds an unknown character
func (cs *CharacterSelect) OnEnter(_ state.Screen) {
	cs.previous = cs.ctx.Session.Character
	cs.choice = cs.previous
	if !cs.choice.Valid() {
		cs.choice = entity.CharacterOne
	}
}

func (cs *CharacterSelect) OnExit(_ state.Screen) {}

var _ scene.Scene = (*CharacterSelect)(nil)
