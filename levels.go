package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ModricFX/JumpScape-sub000/shared/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, dir := levelSource()
		all, err := leveldata.LoadAll(levels, dir, window())
		if err != nil {
			return err
		}
		printLevels(cmd.OutOrStdout(), all)
		return nil
	},
}

func printLevels(w io.Writer, levels []*leveldata.Level) {
	fmt.Fprintf(w, "  %-20s  %9s  %8s  %6s  %s\n", "Level", "Platforms", "Monsters", "Ghosts", "Door")
	fmt.Fprintf(w, "  %-20s  %9s  %8s  %6s  %s\n", "-----", "---------", "--------", "------", "----")
	for _, lvl := range levels {
		monsters := 0
		for _, p := range lvl.Platforms {
			if p.HasMonster {
				monsters++
			}
		}
		door := "none"
		if lvl.Door != nil {
			door = "open"
			if lvl.Door.Locked {
				door = "locked"
			}
		}
		fmt.Fprintf(w, "  %-20s  %9d  %8d  %6d  %s\n", lvl.Name, len(lvl.Platforms), monsters, len(lvl.Ghosts), door)
	}
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> [out]",
	Short: "Resolve groundY/groundLength placeholders in a level file",
	Long: `Rewrite a level file with the ground placeholders replaced by numbers for
the configured window size. Lines that are not level entries pass through
unchanged. Output goes to stdout when no out file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer in.Close()

	var out io.Writer = cmd.OutOrStdout()
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("create %s: %w", args[1], err)
		}
		defer f.Close()
		out = f
	}
	return leveldata.Convert(in, out, window())
}
