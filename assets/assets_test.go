package assets

import (
	"image"
	"testing"

	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	levels, err := leveldata.LoadAll(Levels(), LevelsDir, leveldata.Window{Width: 1280, Height: 720})
	require.NoError(t, err)
	require.Len(t, levels, 4)

	for _, lvl := range levels {
		assert.NotEmpty(t, lvl.Platforms, lvl.Name)
		assert.NotNil(t, lvl.Key, lvl.Name)
		assert.NotNil(t, lvl.Door, lvl.Name)
	}
	assert.Equal(t, "01_first_steps", levels[0].Name)
	assert.Equal(t, "04_tower", levels[3].Name)
}

func TestPixelsSizes(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 40, 60), Pixels(SpritePlayer).Bounds())
	assert.Equal(t, image.Rect(0, 0, 60, 90), Pixels(SpriteDoorLocked).Bounds())
	assert.Equal(t, image.Rect(0, 0, 16, 16), Pixels("nope").Bounds())
}

func TestHeartFill(t *testing.T) {
	full := Pixels(SpriteHeartFull)
	empty := Pixels(SpriteHeartEmpty)
	mid := full.Bounds().Dx() / 2
	y := full.Bounds().Dy() / 2

	assert.Equal(t, uint8(255), full.RGBAAt(mid, y).R)
	assert.Equal(t, uint8(70), empty.RGBAAt(mid, y).R)
}
