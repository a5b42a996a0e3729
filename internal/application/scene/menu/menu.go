// Package menu provides the main menu scene.
package menu

import (
	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/scene"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

// targets follows the order of MenuConfig.MenuButtons
var targets = []state.Screen{state.Intro, state.CharacterSelect, state.About, state.Exit}

// Menu is the title screen: an animated background and four buttons
type Menu struct {
	ctx       *scene.Context
	focus     int
	frame     int
	animTimer float64
}

// New creates the menu scene
func New(ctx *scene.Context) *Menu {
	return &Menu{ctx: ctx}
}

func (m *Menu) Screen() state.Screen { return state.Menu }

// Buttons returns the menu buttons from the current config
func (m *Menu) Buttons() []scene.Button {
	cfgs := m.ctx.Config.Menu.MenuButtons()
	buttons := make([]scene.Button, len(cfgs))
	for i, b := range cfgs {
		buttons[i] = scene.Button{Label: b.Label, Rect: b.Rect.Rect()}
	}
	return buttons
}

// Focus returns the index of the focused button
func (m *Menu) Focus() int { return m.focus }

// Frame returns the background animation frame
func (m *Menu) Frame() int { return m.frame }

func (m *Menu) HandleInput(ev system.Event) *scene.Transition {
	switch ev.Kind {
	case system.MouseMoved:
		if i := m.hit(ev); i >= 0 {
			m.focus = i
		}
	case system.MouseClicked:
		if i := m.hit(ev); i >= 0 {
			return m.activate(i)
		}
	case system.KeyPressed:
		n := len(targets)
		switch ev.Key {
		case system.KeyUp:
			m.focus = (m.focus + n - 1) % n
		case system.KeyDown:
			m.focus = (m.focus + 1) % n
		case system.KeyEnter:
			return m.activate(m.focus)
		}
	}
	return nil
}

func (m *Menu) hit(ev system.Event) int {
	x, y := ev.Point()
	for i, b := range m.Buttons() {
		if b.Hit(x, y) {
			return i
		}
	}
	return -1
}

func (m *Menu) activate(i int) *scene.Transition {
	m.focus = i
	asset.PlaySound(m.ctx.Audio, m.ctx.Resources.Sound(scene.SoundClick), asset.LoopOnce, m.ctx.Logger)
	return scene.To(targets[i], m.Buttons()[i].Label+" selected")
}

// Update advances the background animation
func (m *Menu) Update(dt float64, _ system.Held) (*scene.Transition, error) {
	frames := len(m.ctx.Config.Menu.Frames)
	if frames == 0 {
		return nil, nil
	}
	m.animTimer += dt
	if m.animTimer >= m.ctx.Config.Menu.AnimSpeed {
		m.animTimer = 0
		m.frame = (m.frame + 1) % frames
	}
	return nil, nil
}

func (m *Menu) Draw(c asset.Canvas) {
	screen := m.ctx.FullScreen()
	c.FillRect(screen, scene.ColorBackground)

	if frames := m.ctx.Config.Menu.Frames; len(frames) > 0 {
		tex := m.ctx.Resources.Texture(frames[m.frame%len(frames)])
		if tex != nil {
			c.DrawTexture(tex, screen)
		}
	}

	font := m.ctx.Resources.Font()
	c.DrawText(m.ctx.Config.Window.Title, 50, 80, font, scene.ColorAccent)
	for i, b := range m.Buttons() {
		b.Draw(c, font, i == m.focus)
	}
	c.DrawText("selected: "+m.ctx.Session.Character.String(), 50, screen.Bottom()-30, font, scene.ColorText)
}

// OnEnter restarts the animation and puts focus on Play
func (m *Menu) OnEnter(_ state.Screen) {
	m.focus = 0
	m.frame = 0
	m.animTimer = 0
}

func (m *Menu) OnExit(_ state.Screen) {}

var _ scene.Scene = (*Menu)(nil)
