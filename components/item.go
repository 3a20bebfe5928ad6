package components

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ItemData is a collectible such as the door key.
type ItemData struct {
	Position  dmath.Vec2
	Width     float64
	Height    float64
	Scale     float64
	Kind      string
	Collected bool

	// Cosmetic
	Frame      int
	FrameTimer float64
	BobOffset  float64
	bob        *gween.Tween
	bobUp      bool
}

var Item = donburi.NewComponentType[ItemData]()

func NewKeyData(x, y float64) ItemData {
	return ItemData{
		Position: dmath.NewVec2(x, y),
		Width:    cfg.Item.KeyWidth,
		Height:   cfg.Item.KeyHeight,
		Scale:    1,
		Kind:     ItemKey,
	}
}

func (i *ItemData) Bounds() gamemath.Rect {
	return gamemath.NewRect(i.Position.X, i.Position.Y, i.Width, i.Height)
}

// CanCollect requires overlap and intersecting vertical ranges.
func (i *ItemData) CanCollect(player gamemath.Rect) bool {
	if i.Collected {
		return false
	}
	b := i.Bounds()
	return b.Intersects(player) && b.VerticalRangeIntersects(player)
}

// Collect marks the item taken. It reports true only the first time.
func (i *ItemData) Collect() bool {
	if i.Collected {
		return false
	}
	i.Collected = true
	return true
}

// Animate steps the frame counter and the bob tween.
func (i *ItemData) Animate(dt float64) {
	if i.Collected {
		return
	}

	i.FrameTimer += dt
	if i.FrameTimer >= cfg.Item.KeyFrameLength {
		i.FrameTimer = 0
		if n := cfg.Item.KeyFrameCount; n > 0 {
			i.Frame = (i.Frame + 1) % n
		}
	}

	if i.bob == nil {
		from, to := float32(0), float32(-cfg.Item.BobHeight)
		if i.bobUp {
			from, to = to, from
		}
		i.bob = gween.New(from, to, float32(cfg.Item.BobDuration), ease.InOutSine)
		i.bobUp = !i.bobUp
	}
	v, done := i.bob.Update(float32(dt))
	i.BobOffset = float64(v)
	if done {
		i.bob = nil
	}
}
