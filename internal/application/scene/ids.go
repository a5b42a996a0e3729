package scene

import (
	"fmt"

	"github.com/younwookim/motogame/internal/domain/entity"
)

// Asset ids the screens look up in the ResourceSet. Sequences (menu frames,
// intro slides, background layers) are listed in the config instead.
const (
	ImageSkipButton = "skip_button"
	ImageCoin       = "coin"
	ImageAbout      = "about"
	ImageWin        = "win"
	ImageLose       = "lose"

	SoundWin   = "win"
	SoundLose  = "lose"
	SoundCoin  = "coin"
	SoundClick = "click"
)

// PlayerImage is the in-game sprite id of a character
func PlayerImage(ch entity.Character) string { return "player_" + ch.String() }

// PreviewImage is the selection screen portrait id of a character
func PreviewImage(ch entity.Character) string { return "preview_" + ch.String() }

// BarrierImage is the sprite id of a barrier variant
func BarrierImage(variant int) string { return fmt.Sprintf("barrier_%d", variant) }
