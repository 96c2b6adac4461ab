package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/platform/tui"
	"github.com/vovakirdan/pathgrid/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeSize   int
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pathgrid SSH server",
	Long: `Start an SSH server that lets users connect and edit grids.

Each SSH connection gets its own editor with a private grid. Searches are
recorded in the server's history database with the SSH user as source.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pathgrid/host_key

Examples:
  pathgrid serve                           # Listen on :23235 with auto-generated key
  pathgrid serve --ssh :2222               # Listen on port 2222
  pathgrid serve --host-key ./my_host_key  # Use specific host key
  pathgrid serve --preset spiral --size 25 # Start every session on a preset

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().IntVar(&flagServeSize, "size", 0, "Grid side length (default from config)")
	serveCmd.Flags().StringVar(&flagServePreset, "preset", "", "Preset loaded into each session")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyGridSize(flagServeSize); err != nil {
		return err
	}
	if flagServePreset != "" && !registry.Exists(flagServePreset) {
		return fmt.Errorf("unknown preset %q", flagServePreset)
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		DBPath:      cfg.DBPath,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute,
		GridSize:    cfg.GridSize,
		PresetID:    flagServePreset,
		ToastTTL:    time.Duration(cfg.Editor.ToastSeconds) * time.Second,
		ShowHelp:    cfg.Editor.ShowHelp,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger := newLogger(os.Stderr, "pathgrid-ssh")
	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting pathgrid SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
