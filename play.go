package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ModricFX/JumpScape-sub000/assets"
	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/fonts"
	"github.com/ModricFX/JumpScape-sub000/scenes"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/storage"
	"github.com/ModricFX/JumpScape-sub000/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var (
	flagWatch bool
	flagSeed  int64
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Start the game",
	Long: `Open the title menu, or jump straight into a level when one is named.

Examples:
  jumpscape play
  jumpscape play 03_haunted
  jumpscape play --levels ./mylevels --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files when they change (needs --levels)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for debris (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	levels, dir := levelSource()
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &scenes.Session{
		Levels:   levels,
		Dir:      dir,
		Window:   window(),
		Settings: config.DefaultSettings(),
		Input:    &systems.EbitenInput{},
		Debug:    flagDebug,
		Seed:     seed,
	}
	if err := session.Refresh(); err != nil {
		return err
	}

	start := 0
	if len(args) == 1 {
		start = slices.Index(session.LevelNames(), args[0])
		if start < 0 {
			return fmt.Errorf("unknown level %q (run 'jumpscape levels')", args[0])
		}
	}

	if store, err := storage.OpenSettings("jumpscape"); err != nil {
		log.Warn("could not open settings store, using defaults", "err", err)
	} else {
		session.SettingsStore = store
		session.Settings = store.Load()
	}

	if records, err := storage.OpenRecords(flagRecords); err != nil {
		log.Warn("could not open run records", "path", flagRecords, "err", err)
	} else {
		defer records.Close()
		session.Records = records
	}

	if flagWatch {
		if flagLevels == "" {
			return errors.New("--watch needs --levels")
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		watcher, err := leveldata.Watch(ctx, flagLevels)
		if err != nil {
			return err
		}
		defer watcher.Close()
		session.Changes = watcher.Events()
		log.Info("watching levels", "dir", flagLevels)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	audioContext := audio.NewContext(config.Audio.SampleRate)
	session.Audio = systems.NewAudioSystem(assets.NewSoundBank(audioContext))

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	scenes.ApplyWindowSettings(session.Settings)

	log.Debug("starting", "levels", len(session.Paths), "tps", session.Settings.TPS(), "seed", seed)
	return ebiten.RunGame(NewGame(session, start, len(args) == 1))
}
