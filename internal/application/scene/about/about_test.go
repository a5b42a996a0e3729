package about

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motogame/internal/application/scene/scenetest"
	"github.com/younwookim/motogame/internal/application/state"
	"github.com/younwookim/motogame/internal/application/system"
)

func TestAbout(t *testing.T) {
	h := scenetest.New(t)
	a := New(h.Ctx)

	tr := a.HandleInput(system.Press(system.KeyEscape))
	require.NotNil(t, tr)
	assert.Equal(t, state.Menu, tr.Target)
	assert.Nil(t, a.HandleInput(system.Event{Kind: system.MouseMoved}))

	a.Draw(h.Canvas)
	assert.Equal(t, 1, h.Canvas.Count("texture assets/images/about.png"))
	assert.Len(t, h.Canvas.Texts(), len(credits))
}
