// jumpscape is a 2D platformer: reach the door, find its key, and watch out
// for crumbling ledges, patrolling monsters and ghosts.
//
// Usage:
//
//	jumpscape play [level]        - Start the game, optionally straight into a level
//	jumpscape levels              - List the available levels
//	jumpscape convert <in> [out]  - Resolve groundY/groundLength in a level file
//	jumpscape records [level]     - Show best times and deaths
//	jumpscape tuning              - Print the effective tuning as YAML
//
// Global flags:
//
//	--levels <dir>   - Load levels from a directory instead of the built-in set
//	--records <path> - Run records database (default: ~/.jumpscape/records.db)
//	--tuning <path>  - YAML tuning overlay
//	--debug          - Debug logging and collision outlines
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/ModricFX/JumpScape-sub000/assets"
	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/scenes"
	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/ModricFX/JumpScape-sub000/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLevels  string
	flagRecords string
	flagTuning  string
	flagDebug   bool
)

type Game struct {
	scene scenes.Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game loop after the current tick.
func (g *Game) Quit() {
	g.quit = true
}

// NewGame opens on the title menu, or directly in level start when skipMenu
// is set.
func NewGame(session *scenes.Session, start int, skipMenu bool) *Game {
	g := &Game{}
	if skipMenu {
		g.scene = scenes.NewPlatformerScene(session, g, start)
	} else {
		g.scene = scenes.NewMenuScene(session, g, start)
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpscape",
	Short: "JumpScape - a platformer about keys, doors and crumbling ledges",
	Long: `JumpScape is a 2D platformer. Every level hides a key; take it to the
door to reach the next level.

Examples:
  jumpscape play
  jumpscape play 02_crumbling
  jumpscape play --levels ./mylevels --watch
  jumpscape records`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Levels directory (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagRecords, "records", storage.DefaultRecordsPath, "Path to run records database")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "YAML tuning file (default: ~/.jumpscape/tuning.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision outlines")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(tuningCmd)
}

// setup configures logging and applies the tuning overlay before any command
// runs.
func setup(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumpscape",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	applied, err := config.LoadTuning(flagTuning)
	if err != nil {
		return err
	}
	if applied != "" {
		log.Info("tuning loaded", "path", applied)
	}
	return nil
}

// levelSource returns the file system and directory levels are read from.
func levelSource() (fs.FS, string) {
	if flagLevels == "" {
		return assets.Levels(), assets.LevelsDir
	}
	return os.DirFS(flagLevels), "."
}

// window is the screen size the ground placeholders are resolved against.
func window() leveldata.Window {
	return leveldata.Window{Width: float64(config.C.Width), Height: float64(config.C.Height)}
}
