package endscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motogame/internal/application/scene/scenetest"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

func TestEndScreen_AnyInputReturnsToMenu(t *testing.T) {
	h := scenetest.New(t)
	for _, e := range []*EndScreen{NewWin(h.Ctx), NewLose(h.Ctx)} {
		for _, ev := range []system.Event{system.Press(system.KeyLeft), system.Click(1, 1)} {
			tr := e.HandleInput(ev)
			require.NotNil(t, tr, e.Screen().String())
			assert.Equal(t, state.Menu, tr.Target)
		}
		assert.Nil(t, e.HandleInput(system.Event{Kind: system.MouseMoved}))
	}
}

func TestEndScreen_Sounds(t *testing.T) {
	h := scenetest.New(t)

	NewLose(h.Ctx).OnEnter(state.Playing)
	assert.Empty(t, h.Audio.Played)

	NewWin(h.Ctx).OnEnter(state.WinDelay)
	assert.Equal(t, []string{"assets/audio/win.wav"}, h.Audio.Played)
}

func TestEndScreen_DrawShowsCoins(t *testing.T) {
	h := scenetest.New(t, "win.png")
	h.Ctx.Session.EndRun(true, 7)
	w := NewWin(h.Ctx)

	w.Draw(h.Canvas)

	assert.Equal(t, 0, h.Canvas.Count("texture"))
	assert.Equal(t, []string{"YOU WIN", "Coins collected: 7", "Press any key"}, h.Canvas.Texts())
}
