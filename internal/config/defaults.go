package config

import (
	_ "embed"
)

//go:embed defaults/pathgrid.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
// It matches defaults/pathgrid.yaml and is used if the embedded file is unusable.
func Default() Config {
	return Config{
		GridSize: 20,
		DBPath:   "~/.pathgrid/history.db",
		LogLevel: "info",
		LogFile:  "~/.pathgrid/pathgrid.log",
		Editor: EditorConfig{
			ToastSeconds: 3,
			ShowHelp:     true,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
	}
}
