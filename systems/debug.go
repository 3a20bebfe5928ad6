package systems

import (
	"image/color"

	"github.com/ModricFX/JumpScape-sub000/components"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box. Platforms that are not collidable
// are skipped, so a broken platform visibly loses its box.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := CameraOffset(e)

	outline := func(x, y, w, h float64, c color.Color) {
		vector.StrokeRect(screen, float32(x+ox), float32(y+oy), float32(w), float32(h), 1, c, false)
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		if !p.Collidable() {
			return
		}
		b := p.Bounds()
		outline(b.X, b.Y, b.W, b.H, color.RGBA{100, 100, 100, 255})
	})
	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		m := components.Monster.Get(entry)
		b := m.Bounds()
		outline(b.X, b.Y, b.W, b.H, color.RGBA{255, 0, 0, 255})
		sight := b
		sight.X = m.PatrolLeft
		sight.W = m.PatrolRight - m.PatrolLeft
		outline(sight.X, sight.Y, sight.W, sight.H, color.RGBA{255, 120, 0, 120})
	})
	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		b := components.Ghost.Get(entry).Bounds()
		outline(b.X, b.Y, b.W, b.H, color.RGBA{255, 0, 255, 255})
	})
	if _, player, ok := GetPlayer(e); ok {
		b := player.Bounds()
		outline(b.X, b.Y, b.W, b.H, color.RGBA{0, 0, 255, 255})
	}
}
