package systems

import (
	"image/color"

	"github.com/ModricFX/JumpScape-sub000/assets"
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawWorld renders every entity in world space. Draw order: platforms,
// debris, door, key, monsters, ghosts, player.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	ox, oy := CameraOffset(e)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		drawPlatform(screen, components.Platform.Get(entry), ox, oy)
	})

	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		door := components.Door.Get(entry)
		drawSprite(screen, assets.Image(assets.SpriteDoorLocked), door.Position.X+ox, door.Position.Y+oy, false, 0, 1-door.OpenAmount)
		if door.State == components.DoorOpened {
			drawSprite(screen, assets.Image(assets.SpriteDoorOpen), door.Position.X+ox, door.Position.Y+oy, false, 0, door.OpenAmount)
		}
		if door.State == components.DoorUnlocked {
			vector.StrokeRect(screen, float32(door.Position.X+ox), float32(door.Position.Y+oy),
				float32(door.Width), float32(door.Height), 2, cfg.BrightGreen, false)
		}
	})

	tags.Key.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Collected {
			return
		}
		drawSprite(screen, assets.KeyFrame(item.Frame), item.Position.X+ox, item.Position.Y+item.BobOffset+oy, false, 0, 1)
	})

	tags.Monster.Each(e.World, func(entry *donburi.Entry) {
		m := components.Monster.Get(entry)
		img := assets.Image(assets.SpriteMonster)
		if m.Alert {
			img = assets.Image(assets.SpriteMonsterAlert)
		}
		drawSprite(screen, img, m.Position.X+ox, m.Position.Y+oy, m.Facing == components.DirectionLeft, 0, 1)
	})

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		g := components.Ghost.Get(entry)
		// Hover is cosmetic only; collision uses the smoothed box.
		drawSprite(screen, assets.Image(assets.SpriteGhost), g.Smoothed.X+ox, g.Smoothed.Y+g.HoverOffset()+oy,
			g.Facing == components.DirectionLeft, 0, 0.85)
	})

	if _, player, ok := GetPlayer(e); ok && !player.Flash {
		drawSprite(screen, assets.Image(assets.SpritePlayer), player.Position.X+ox, player.Position.Y+oy,
			player.Facing == components.DirectionLeft, player.DeathRotation, 1)
	}
}

func drawPlatform(screen *ebiten.Image, p *components.PlatformData, ox, oy float64) {
	for i := range p.Particles {
		part := &p.Particles[i]
		c := part.Color
		c.A = uint8(float64(c.A) * part.Alpha())
		size := cfg.Platform.ParticleSize * part.Scale
		vector.FillRect(screen, float32(part.Position.X+ox), float32(part.Position.Y+oy),
			float32(size), float32(size), premultiply(c), false)
	}

	if !p.Visible() {
		return
	}
	c := cfg.Platform.Color
	if p.Disappearing {
		c = cfg.Platform.DisappearingTint
	}
	if p.Cracking() && int(p.State.Remaining*10)%2 == 0 {
		c = cfg.LightRed
	}
	b := p.Bounds()
	vector.FillRect(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.W), float32(b.H), c, false)
}

// drawSprite draws img with its top-left at (x, y). Rotation pivots on the
// bottom-centre so a dying player tips over in place.
func drawSprite(screen, img *ebiten.Image, x, y float64, flip bool, rotation, alpha float64) {
	if alpha <= 0 {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-w/2, -h)
	if flip {
		drawOp.GeoM.Scale(-1, 1)
	}
	if rotation != 0 {
		drawOp.GeoM.Rotate(rotation)
	}
	drawOp.GeoM.Translate(x+w/2, y+h)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, drawOp)
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
