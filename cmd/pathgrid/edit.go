package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pathgrid/internal/config"
	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/platform/tui"
	"github.com/vovakirdan/pathgrid/internal/registry"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

var (
	flagEditSize   int
	flagEditLayout string
	flagEditPreset string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a grid and find paths",
	Long: `Open the interactive grid editor.

Controls:
  Arrows/hjkl     - Move cursor
  S / F           - Mark start / finish
  X / Space       - Toggle barrier
  D / Backspace   - Clear cell
  Enter / P       - Find path
  C               - Clear grid
  N               - Load next preset
  ?               - Show or hide info
  Q / Ctrl+C      - Quit

Mouse: left click toggles a barrier, right click clears a cell.

Examples:
  pathgrid edit
  pathgrid edit --size 30
  pathgrid edit --preset spiral
  pathgrid edit --layout ./maze.yaml
  pathgrid edit --layout detour --dir ./layouts`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagEditSize, "size", 0, "Grid side length (default from config)")
	editCmd.Flags().StringVar(&flagEditLayout, "layout", "", "Layout YAML file, or layout ID under --dir, to start from")
	editCmd.Flags().StringVar(&flagEditPreset, "preset", "", "Built-in preset to start from")
	editCmd.MarkFlagsMutuallyExclusive("layout", "preset")
}

func runEdit(_ *cobra.Command, _ []string) error {
	if flagEditPreset != "" && !registry.Exists(flagEditPreset) {
		return fmt.Errorf("unknown preset %q, run 'pathgrid presets' to see available presets", flagEditPreset)
	}

	opts := tui.Options{
		ToastTTL: time.Duration(cfg.Editor.ToastSeconds) * time.Second,
		ShowHelp: cfg.Editor.ShowHelp,
		PresetID: flagEditPreset,
	}

	if flagEditLayout != "" {
		l, err := loadLayout(flagEditLayout, flagDir)
		if err != nil {
			return err
		}
		if err := adoptLayoutSize(l, flagEditSize); err != nil {
			return err
		}
		opts.Layout = &l
	} else if err := applyGridSize(flagEditSize); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < tui.GridWidth(cfg.GridSize) || height < tui.GridHeight(cfg.GridSize)+4 {
		fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d may be too small for a %d grid\n", width, height, cfg.GridSize)
	}

	opts.Config = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		GridSize: cfg.GridSize,
		Source:   "local",
	}

	// The editor owns the terminal, so logs go to a file.
	logOut, closeLog := openLogFile(cfg.LogFile)
	defer closeLog()
	opts.Logger = newLogger(logOut, "pathgrid")

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - the editor still works
	} else {
		opts.Recorder = store
		defer store.Close()
	}

	opts.Logger.Info("editor started", "size", cfg.GridSize, "preset", flagEditPreset, "layout", flagEditLayout)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// openLogFile opens path for appending. Logging is dropped when the file
// cannot be opened.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
