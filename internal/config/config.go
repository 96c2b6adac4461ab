// Package config provides YAML-based configuration loading for pathgrid.
package config

import "fmt"

// Grid size limits. The editor draws two columns per cell, so very large
// grids stop fitting any terminal.
const (
	MinGridSize = 2
	MaxGridSize = 64
)

// Config contains all pathgrid settings.
type Config struct {
	GridSize int          `yaml:"grid_size"`
	DBPath   string       `yaml:"db_path"`
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
	LogFile  string       `yaml:"log_file"`  // editor log; the TUI owns the terminal
	Editor   EditorConfig `yaml:"editor"`
	SSH      SSHConfig    `yaml:"ssh"`
}

// EditorConfig defines presentation parameters for the editor.
type EditorConfig struct {
	ToastSeconds int  `yaml:"toast_seconds"` // How long notifications stay visible
	ShowHelp     bool `yaml:"show_help"`     // Show the info panel on start
}

// SSHConfig defines parameters for `pathgrid serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks that the configuration can drive an editor session.
func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: grid_size %d out of range [%d, %d]", c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.Editor.ToastSeconds < 0 {
		return fmt.Errorf("config: editor.toast_seconds must not be negative")
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative")
	}
	return nil
}
