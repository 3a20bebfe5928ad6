package systems

import (
	"fmt"

	"github.com/ModricFX/JumpScape-sub000/components"
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// MenuHandler carries out what the title menu asks for.
type MenuHandler interface {
	Settings() cfg.Settings
	ApplySettings(s cfg.Settings)
	LevelNames() []string
	Play(levelIndex int)
	Quit()
}

// NewUpdateMenu creates the title menu system.
func NewUpdateMenu(h MenuHandler) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetMenu(e)
		input := GetInput(e)
		audio := getAudio(e)

		switch {
		case input.JustPressed(cfg.ActionMenuUp):
			menu.Move(-1)
		case input.JustPressed(cfg.ActionMenuDown):
			menu.Move(1)
		case input.JustPressed(cfg.ActionMoveLeft):
			adjustMenu(h, menu, audio, -1)
		case input.JustPressed(cfg.ActionMoveRight):
			adjustMenu(h, menu, audio, 1)
		case input.JustPressed(cfg.ActionConfirm):
			switch menu.Selected() {
			case components.MenuPlay:
				h.Play(menu.LevelIndex)
				return
			case components.MenuQuit:
				h.Quit()
				return
			default:
				adjustMenu(h, menu, audio, 1)
			}
		case input.JustPressed(cfg.ActionBack):
			h.Quit()
			return
		default:
			return
		}
		audio.Queue(cfg.SoundMenu, audio.MasterVolume, 0)
	}
}

func adjustMenu(h MenuHandler, menu *components.MenuData, audio *components.AudioData, dir int) {
	current := h.Settings()
	next := menu.Adjust(current, dir, len(h.LevelNames()))
	if next != current {
		h.ApplySettings(next)
		audio.MasterVolume = next.VolumeScale()
	}
}

// DrawMenu renders the title menu
func DrawMenu(h MenuHandler) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu := GetMenu(e)
		width := float64(screen.Bounds().Dx())

		vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.Background, false)

		titleFont := fonts.Title.Get()
		text.Draw(screen, cfg.C.Title, titleFont, centerTextX(cfg.C.Title, titleFont, width), int(cfg.Menu.TitleY), cfg.Yellow)

		face := fonts.HUD.Get()
		settings := h.Settings()
		names := h.LevelNames()
		for i, option := range menu.Options {
			y := cfg.Menu.StartY + float64(i)*(cfg.Menu.ItemHeight+cfg.Menu.ItemGap)

			clr := cfg.White
			if i == menu.SelectedIndex {
				clr = cfg.Yellow
			}
			label := menuLabel(option, menu.LevelIndex, names, settings)
			text.Draw(screen, label, face, centerTextX(label, face, width), int(y+cfg.Menu.ItemHeight), clr)
		}

		hint := "Up/Down: navigate   Left/Right: change   Enter: select"
		small := fonts.Small.Get()
		text.Draw(screen, hint, small, centerTextX(hint, small, width), screen.Bounds().Dy()-16, cfg.LightBlue)
	}
}

func menuLabel(option components.MenuOption, level int, names []string, s cfg.Settings) string {
	switch option {
	case components.MenuPlay:
		return "Play"
	case components.MenuLevel:
		name := "-"
		if level >= 0 && level < len(names) {
			name = names[level]
		}
		return fmt.Sprintf("Level: < %s >", name)
	case components.MenuVolume:
		return fmt.Sprintf("Volume: < %d%% >", s.Volume)
	case components.MenuFrameRate:
		fps := cfg.FrameRates[s.FrameRateIndex]
		if fps == cfg.FrameRateUnlimited {
			return "Frame rate: < unlimited >"
		}
		return fmt.Sprintf("Frame rate: < %d >", fps)
	case components.MenuFullscreen:
		if s.Fullscreen {
			return "Fullscreen: on"
		}
		return "Fullscreen: off"
	case components.MenuQuit:
		return "Quit"
	}
	return ""
}

// GetMenu returns the singleton Menu component, creating it if needed
func GetMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.NewMenuData(0))
	}
	return components.Menu.Get(entry)
}
