// pathgrid is a terminal grid editor that finds shortest paths around
// barriers.
//
// Usage:
//
//	pathgrid edit              - Edit a grid interactively and search it
//	pathgrid solve             - Solve a layout or preset and print the grid
//	pathgrid presets           - List built-in layouts
//	pathgrid history           - Show recorded searches
//	pathgrid serve             - Host the editor over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pathgrid, ./configs)
//	--db <path>         - Search history database
//	--log-level <level> - debug, info, warn or error
//	--dir <path>        - Layout directory for --layout IDs (default: ./layouts)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/config"

	// Import presets to register them
	_ "github.com/vovakirdan/pathgrid/internal/presets"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagDir      string

	// cfg is loaded before every subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathgrid",
	Short: "pathgrid - find shortest paths on a grid in your terminal",
	Long: `pathgrid is a terminal grid editor. Mark a start and a finish, draw
barriers, and ask for the shortest path that moves up, down, left or right.

Available commands:
  edit     - Interactive grid editor
  solve    - Solve a layout file or preset and print the result
  presets  - Show built-in layouts
  history  - View recorded searches
  serve    - Start SSH server for remote editing

Examples:
  pathgrid edit
  pathgrid edit --preset spiral --size 15
  pathgrid solve --layout ./maze.yaml
  pathgrid solve --layout detour --dir ./layouts
  pathgrid serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to search history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "layouts", "Directory searched for layout IDs given to --layout")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.LogLevel = flagLogLevel
	}
	if _, err := log.ParseLevel(loaded.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", loaded.LogLevel)
	}
	cfg = loaded
	return nil
}

// applyGridSize overrides the configured grid size when the flag is set.
func applyGridSize(size int) error {
	if size == 0 {
		return nil
	}
	cfg.GridSize = size
	return cfg.Validate()
}

// newLogger builds a logger at the configured level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, _ := log.ParseLevel(cfg.LogLevel)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
