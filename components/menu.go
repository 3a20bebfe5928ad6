package components

import (
	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/yohamta/donburi"
)

// MenuOption represents the available title menu rows
type MenuOption int

const (
	MenuPlay MenuOption = iota
	MenuLevel
	MenuVolume
	MenuFrameRate
	MenuFullscreen
	MenuQuit
)

// volumeStep is how much one left/right press changes the volume.
const volumeStep = 10

// MenuData stores the current state of the title menu
type MenuData struct {
	SelectedIndex int          // Current selection index in Options
	Options       []MenuOption // Rows in display order
	LevelIndex    int          // Level that Play starts from
}

// Menu is the component type for title menu state
var Menu = donburi.NewComponentType[MenuData]()

// NewMenuData returns a menu with every option, starting at level.
func NewMenuData(level int) MenuData {
	return MenuData{
		Options:    []MenuOption{MenuPlay, MenuLevel, MenuVolume, MenuFrameRate, MenuFullscreen, MenuQuit},
		LevelIndex: level,
	}
}

// Selected returns the highlighted option.
func (m *MenuData) Selected() MenuOption {
	if len(m.Options) == 0 {
		return MenuPlay
	}
	return m.Options[m.SelectedIndex]
}

// Move changes the selection with wrap-around.
func (m *MenuData) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.SelectedIndex = ((m.SelectedIndex+delta)%n + n) % n
}

// Adjust applies a left (-1) or right (+1) press to the selected row and
// returns the resulting settings. Only the level row changes the menu itself.
func (m *MenuData) Adjust(s cfg.Settings, dir, levelCount int) cfg.Settings {
	switch m.Selected() {
	case MenuLevel:
		if levelCount > 0 {
			m.LevelIndex = ((m.LevelIndex+dir)%levelCount + levelCount) % levelCount
		}
	case MenuVolume:
		s.Volume += dir * volumeStep
	case MenuFrameRate:
		n := len(cfg.FrameRates)
		s.FrameRateIndex = ((s.FrameRateIndex+dir)%n + n) % n
	case MenuFullscreen:
		s.Fullscreen = !s.Fullscreen
	}
	return s.Normalize()
}
