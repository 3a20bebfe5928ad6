package main

import (
	"fmt"
	"io"

	"github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/storage"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show best times and deaths per level",
	Long: `Without arguments, print one summary row per level. With a level name,
print its most recent runs.

Examples:
  jumpscape records
  jumpscape records 01_first_steps`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	records, err := storage.OpenRecords(flagRecords)
	if err != nil {
		return err
	}
	defer records.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		runs, err := records.Recent(args[0], 10)
		if err != nil {
			return err
		}
		printRuns(out, args[0], runs)
		return nil
	}

	sums, err := records.Summaries()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Fprintln(out, "No runs recorded yet. Play 'jumpscape play' to set the first one!")
		return nil
	}
	for _, s := range sums {
		fmt.Fprintln(out, s.String())
	}
	return nil
}

func printRuns(w io.Writer, level string, runs []storage.Run) {
	fmt.Fprintf(w, "Recent runs - %s\n\n", level)
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}
	fmt.Fprintf(w, "  %-8s  %-9s  %s\n", "Outcome", "Time", "Date")
	fmt.Fprintf(w, "  %-8s  %-9s  %s\n", "-------", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-8s  %8.2fs  %s\n", r.Outcome, r.Seconds, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Print the effective tuning as YAML",
	Long: `Print every tunable value after applying the tuning overlay. Save the
output to ~/.jumpscape/tuning.yaml and edit it to change the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.DumpTuning()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
