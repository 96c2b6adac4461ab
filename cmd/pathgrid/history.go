package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathgrid/internal/platform/tui"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded searches",
	Long: `Display recent path searches with their outcome and timing.

On a terminal the history opens as an interactive table; otherwise, or
with --plain, it is printed as text.

Examples:
  pathgrid history
  pathgrid history --plain --limit 5
  pathgrid history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of searches to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded searches")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, termErr := term.GetSize(fd)
		if termErr != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, flagHistoryLimit, width, height)
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	printHistory(cmd.OutOrStdout(), runs, stats)
	return nil
}

// printHistory writes runs as a text table followed by the totals.
func printHistory(w io.Writer, runs []storage.Run, stats *storage.Stats) {
	fmt.Fprintln(w, "Search History")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No searches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'pathgrid edit' and press Enter to find a path!")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-4s  %-17s  %-5s  %s\n", "Date", "Source", "Grid", "Result", "Steps", "Time")
	fmt.Fprintf(w, "  %-16s  %-10s  %-4s  %-17s  %-5s  %s\n", "----", "------", "----", "------", "-----", "----")
	for _, r := range runs {
		steps := "-"
		if r.Found {
			steps = fmt.Sprintf("%d", r.PathLength)
		}
		fmt.Fprintf(w, "  %-16s  %-10s  %-4d  %-17s  %-5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Source, r.GridSize, r.Reason, steps, r.Duration)
	}

	if stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total: %d searches, %d found, avg %s, longest %d steps\n",
			stats.Runs, stats.Found, stats.AvgDuration, stats.LongestPath)
	}
}
