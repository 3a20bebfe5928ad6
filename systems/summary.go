package systems

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawSummary renders a title followed by one line per entry, e.g. the run
// totals shown after the last level.
func DrawSummary(title string, lines []string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.Background, false)

		titleFont := fonts.Title.Get()
		text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.BrightGreen)

		face := fonts.Small.Get()
		y := cfg.Menu.StartY
		for _, line := range lines {
			text.Draw(screen, line, face, centerTextX(line, face, width), int(y), cfg.White)
			y += cfg.Menu.ItemHeight
		}

		hint := "Enter: back to menu"
		hintFont := fonts.HUD.Get()
		text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), screen.Bounds().Dy()-24, cfg.LightBlue)
	}
}
