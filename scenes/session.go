package scenes

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/storage"
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Session is the state shared by every scene of one run of the game.
type Session struct {
	// Levels holds the level files under Dir; Paths is their sorted list.
	Levels fs.FS
	Dir    string
	Paths  []string
	Window leveldata.Window

	Settings      cfg.Settings
	SettingsStore *storage.SettingsStore // nil keeps settings in memory only
	Records       *storage.Records       // nil disables run records

	Input systems.InputSource
	Audio *systems.AudioSystem // nil runs silent

	Debug bool
	Seed  int64

	// Changes delivers level files modified on disk; nil when not watching.
	Changes <-chan string
}

// Refresh re-reads the level list from Dir.
func (s *Session) Refresh() error {
	paths, err := leveldata.List(s.Levels, s.Dir)
	if err != nil {
		return err
	}
	s.Paths = paths
	return nil
}

// LevelNames returns the file stems of the level list, in play order.
func (s *Session) LevelNames() []string {
	names := make([]string, len(s.Paths))
	for i, p := range s.Paths {
		base := path.Base(p)
		names[i] = strings.TrimSuffix(base, path.Ext(base))
	}
	return names
}

// Step is the fixed tick length in seconds.
func (s *Session) Step() float64 {
	return 1 / float64(s.Settings.TPS())
}

// ApplySettings pushes new preferences to the window and saves them.
func (s *Session) ApplySettings(next cfg.Settings) {
	s.Settings = next.Normalize()
	ApplyWindowSettings(s.Settings)

	if s.SettingsStore == nil {
		return
	}
	if err := s.SettingsStore.Save(s.Settings); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

// ApplyWindowSettings sets tick rate, vsync and fullscreen on the window.
func ApplyWindowSettings(st cfg.Settings) {
	ebiten.SetTPS(st.TPS())
	ebiten.SetVsyncEnabled(st.VSync())
	ebiten.SetFullscreen(st.Fullscreen)
}

// pollChanges drains pending file events without blocking. It refreshes the
// level list when anything changed and reports whether current was touched.
func (s *Session) pollChanges(current string) bool {
	if s.Changes == nil {
		return false
	}

	touched, changed := false, false
drain:
	for {
		select {
		case name, ok := <-s.Changes:
			if !ok {
				s.Changes = nil
				break drain
			}
			changed = true
			if path.Base(filepath.ToSlash(name)) == path.Base(current) {
				touched = true
			}
		default:
			break drain
		}
	}

	if changed {
		if err := s.Refresh(); err != nil {
			log.Warn("could not refresh level list", "err", err)
		}
	}
	return touched
}

// stopAudio silences loops left over from the scene being torn down.
func (s *Session) stopAudio() {
	if s.Audio != nil {
		s.Audio.StopAll()
	}
}
