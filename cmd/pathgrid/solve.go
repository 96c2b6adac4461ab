package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/grid"
	"github.com/vovakirdan/pathgrid/internal/platform/tui"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

var (
	flagSolveSize   int
	flagSolveLayout string
	flagSolvePreset string
	flagSolveColor  bool
	flagSolveRecord bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a layout and print the grid",
	Long: `Load a layout file or a built-in preset, search for the shortest path
and print the grid with the path drawn in.

An unreachable finish is a normal outcome: the command prints
"No path found!" and exits 0.

Legend:
  S start   F finish   █ barrier   • path   · empty

Examples:
  pathgrid solve --preset wall
  pathgrid solve --preset spiral --size 21 --color
  pathgrid solve --layout ./maze.yaml
  pathgrid solve --layout detour --dir ./layouts`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveSize, "size", 0, "Grid side length (default: layout size or config)")
	solveCmd.Flags().StringVar(&flagSolveLayout, "layout", "", "Layout YAML file or layout ID under --dir")
	solveCmd.Flags().StringVar(&flagSolvePreset, "preset", "", "Built-in preset ID")
	solveCmd.Flags().BoolVar(&flagSolveColor, "color", false, "Colour the grid")
	solveCmd.Flags().BoolVar(&flagSolveRecord, "record", true, "Save the search to history")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	if err := applyGridSize(flagSolveSize); err != nil {
		return err
	}

	l, err := resolveLayout(flagSolveLayout, flagSolvePreset, flagDir, cfg.GridSize)
	if err != nil {
		return err
	}
	if err := adoptLayoutSize(l, flagSolveSize); err != nil {
		return err
	}

	e := grid.NewEngine(cfg.GridSize)
	l.Apply(e)

	logger := newLogger(os.Stderr, "pathgrid")
	res, elapsed := solve(cmd.OutOrStdout(), e, flagSolveColor)
	logger.Debug("search", "layout", l.ID, "reason", res.Reason, "visited", res.Visited, "elapsed", elapsed)

	if flagSolveRecord {
		recordRun(logger, tui.NewRun(e, res, elapsed, "local"))
	}
	return nil
}

// solve searches e and prints the grid followed by the outcome.
func solve(w io.Writer, e *grid.Engine, color bool) (grid.Result, time.Duration) {
	began := time.Now()
	res := e.RequestPath()
	elapsed := time.Since(began)

	if color {
		s := core.NewScreen(tui.GridWidth(e.Size()), tui.GridHeight(e.Size()))
		tui.DrawGrid(s, e, 0, 0, nil)
		fmt.Fprintln(w, tui.RenderScreen(s))
	} else {
		fmt.Fprintln(w, tui.GridString(e))
	}
	fmt.Fprintln(w)

	switch res.Reason {
	case grid.ReasonMissingEndpoints:
		fmt.Fprintln(w, "Choose start and finish positions!")
		return res, elapsed
	case grid.ReasonNotFound:
		fmt.Fprintln(w, "No path found!")
	default:
		fmt.Fprintln(w, "Path found successfully!")
		fmt.Fprintf(w, "Length: %d steps\n", res.Path.Len())
	}
	fmt.Fprintf(w, "Visited: %d cells\n", res.Visited)
	fmt.Fprintf(w, "Time spent: %d ms\n", elapsed.Milliseconds())
	return res, elapsed
}

// recordRun saves run to the history database. Failures are logged only.
func recordRun(logger *log.Logger, run storage.Run) {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
	}
}
