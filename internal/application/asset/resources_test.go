package asset_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/motogame/internal/application/asset"
	"github.com/younwookim/motogame/internal/application/asset/assettest"
	"github.com/younwookim/motogame/internal/domain/entity"
	"github.com/younwookim/motogame/internal/infrastructure/config"
	"github.com/younwookim/motogame/internal/infrastructure/logging"
)

func manifest() config.AssetsConfig {
	return config.AssetsConfig{
		BasePath: "assets",
		Font:     config.FontConfig{Path: "fonts/game_font.ttf", Size: 24},
		Images: []config.AssetConfig{
			{ID: "player", Path: "images/player.png", Required: true},
			{ID: "barrier_0", Path: "images/barrier_0.png"},
		},
		Sounds: []config.AssetConfig{{ID: "lose", Path: "audio/lose.wav"}},
		Music:  []config.AssetConfig{{ID: "menu", Path: "audio/menu.ogg"}},
	}
}

func TestLoad_All(t *testing.T) {
	loader := &assettest.Loader{}

	res, err := asset.Load(loader, manifest(), logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, "assets/images/player.png", res.Texture("player").Path())
	assert.NotNil(t, res.Texture("barrier_0"))
	assert.NotNil(t, res.Sound("lose"))
	assert.NotNil(t, res.Music("menu"))
	assert.Equal(t, 24.0, res.Font().Size())
	assert.Nil(t, res.Texture("unknown"))
	assert.Len(t, loader.Loaded, 5)
}

func TestLoad_OptionalMissingDegrades(t *testing.T) {
	loader := &assettest.Loader{Missing: []string{"barrier_0", "lose.wav"}}

	res, err := asset.Load(loader, manifest(), logging.Discard())
	require.NoError(t, err)

	assert.Nil(t, res.Texture("barrier_0"))
	assert.Nil(t, res.Sound("lose"))
	assert.NotNil(t, res.Texture("player"))
}

func TestLoad_RequiredMissingIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{"texture", "player.png"},
		{"font", "game_font.ttf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &assettest.Loader{Missing: []string{tt.missing}}

			res, err := asset.Load(loader, manifest(), logging.Discard())
			assert.Nil(t, res)
			require.ErrorIs(t, err, asset.ErrNotLoaded)
			assert.ErrorContains(t, err, tt.missing)
		})
	}
}

func TestResourceSet_Release(t *testing.T) {
	loader := &assettest.Loader{}
	res, err := asset.Load(loader, manifest(), logging.Discard())
	require.NoError(t, err)

	res.Release()

	assert.Equal(t, 2, loader.Unloaded)
	assert.Nil(t, res.Texture("player"))
	assert.Nil(t, res.Font())
}

func TestBlit_Placeholder(t *testing.T) {
	canvas := &assettest.Canvas{}
	dst := entity.NewRect(1, 2, 3, 4)

	asset.Blit(canvas, nil, dst, color.White)
	asset.Blit(canvas, asset.NewTexture("x.png", 3, 4, nil), dst, color.White)

	assert.Equal(t, 1, canvas.Count("rect"))
	assert.Equal(t, 1, canvas.Count("texture x.png"))
}

func TestPlaySound(t *testing.T) {
	audio := &assettest.Audio{}
	logger := logging.Discard()

	assert.Equal(t, asset.NoChannel, asset.PlaySound(audio, nil, asset.LoopOnce, logger))
	assert.Empty(t, audio.Played)

	ch := asset.PlaySound(audio, asset.NewSound("a.wav", nil), asset.LoopOnce, logger)
	assert.True(t, audio.IsChannelPlaying(ch))

	audio.PlayErr = errors.New("channels exhausted")
	assert.Equal(t, asset.NoChannel, asset.PlaySound(audio, asset.NewSound("b.wav", nil), asset.LoopOnce, logger))
}

func TestNull(t *testing.T) {
	n := &asset.Null{}
	res, err := asset.Load(n, manifest(), logging.Discard())
	require.NoError(t, err)

	ch, err := n.PlaySound(res.Sound("lose"), asset.LoopOnce)
	require.NoError(t, err)
	assert.False(t, n.IsChannelPlaying(ch))

	require.NoError(t, n.PlayMusic(res.Music("menu"), asset.LoopForever))
	assert.True(t, n.IsMusicPlaying())
	n.StopMusic()
	assert.False(t, n.IsMusicPlaying())
}
