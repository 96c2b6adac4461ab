package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/layouts"
	"github.com/vovakirdan/pathgrid/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in layouts",
	Long: `Shows the built-in layout presets followed by the valid layout files
found under --dir (./layouts by default). Their IDs work with --layout.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	printPresets(w)

	// The default directory is optional; one named explicitly must exist.
	if _, err := os.Stat(flagDir); err != nil && !cmd.Flags().Changed("dir") {
		return nil
	}

	found, err := layouts.NewLoader(flagDir).LoadAll()
	if err != nil {
		return fmt.Errorf("listing layouts: %w", err)
	}
	fmt.Fprintln(w)
	printLayouts(w, found)
	return nil
}

// printPresets writes the registered presets as a two-column table.
func printPresets(w io.Writer) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(w, "No presets available.")
		return
	}

	fmt.Fprintln(w, "Built-in presets:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range presets {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pathgrid edit --preset <id>' to edit one.")
}

// printLayouts writes layout files found on disk.
func printLayouts(w io.Writer, found []layouts.Layout) {
	if len(found) == 0 {
		fmt.Fprintln(w, "No layout files found.")
		return
	}

	fmt.Fprintln(w, "Layout files (use the ID with --layout):")
	fmt.Fprintln(w)
	for _, l := range found {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		fmt.Fprintf(w, "  %-16s  %-24s  %2dx%-2d  %s\n", l.ID, name, l.Size, l.Size, l.FilePath)
	}
}
