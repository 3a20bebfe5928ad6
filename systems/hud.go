package systems

import (
	"fmt"

	"github.com/ModricFX/JumpScape-sub000/assets"
	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders hearts, the inventory slots and the level clock.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	_, player, ok := GetPlayer(e)
	if !ok {
		return
	}
	margin := cfg.HUD.Margin

	// One heart per two half-heart units.
	hearts := (player.MaxHealth + 1) / 2
	for i := 0; i < hearts; i++ {
		name := assets.SpriteHeartEmpty
		switch remaining := player.Health - 2*i; {
		case remaining >= 2:
			name = assets.SpriteHeartFull
		case remaining == 1:
			name = assets.SpriteHeartHalf
		}
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Translate(margin+float64(i)*(cfg.HUD.HeartSize+4), margin)
		screen.DrawImage(assets.Image(name), hudDrawOp)
	}

	slotY := margin*2 + cfg.HUD.HeartSize
	for i := 0; i < player.Inventory.Capacity(); i++ {
		x := margin + float64(i)*(cfg.HUD.SlotSize+4)
		vector.FillRect(screen, float32(x), float32(slotY), float32(cfg.HUD.SlotSize), float32(cfg.HUD.SlotSize), cfg.BlackOverlay, false)
		vector.StrokeRect(screen, float32(x), float32(slotY), float32(cfg.HUD.SlotSize), float32(cfg.HUD.SlotSize), 1, cfg.White, false)
		if player.Inventory.Get(i) == components.ItemKey {
			key := assets.KeyFrame(0)
			hudDrawOp.GeoM.Reset()
			hudDrawOp.GeoM.Translate(x+(cfg.HUD.SlotSize-float64(key.Bounds().Dx()))/2, slotY+(cfg.HUD.SlotSize-float64(key.Bounds().Dy()))/2)
			screen.DrawImage(key, hudDrawOp)
		}
	}

	if lvl := GetLevel(e); lvl != nil {
		face := fonts.HUD.Get()
		label := fmt.Sprintf("%s  %.1fs", lvl.Name, lvl.Elapsed)
		w := text.BoundString(face, label).Dx()
		text.Draw(screen, label, face, cfg.C.Width-w-int(margin), int(margin)+18, cfg.White)
	}
}

// DrawOutcome dims the screen and shows the result once the level has one.
func DrawOutcome(e *ecs.ECS, screen *ebiten.Image) {
	lvl := GetLevel(e)
	if lvl == nil || lvl.Outcome == components.LevelPlaying {
		return
	}

	width := float64(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.BlackOverlay, false)

	title, hint := "You died", "Press R to retry"
	titleColor := cfg.LightRed
	if lvl.Outcome == components.LevelComplete {
		title = "Level complete"
		hint = fmt.Sprintf("%.1fs  -  press Enter to continue", lvl.Elapsed)
		titleColor = cfg.BrightGreen
	}

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), cfg.C.Height/2-20, titleColor)
	hintFont := fonts.HUD.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), cfg.C.Height/2+30, cfg.White)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
