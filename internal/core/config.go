package core

// RuntimeConfig contains configuration passed to an editor session at start.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	GridSize int    // Side length of the square grid
	Source   string // Who runs the session: "local" or an SSH user name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		GridSize: 20,
		Source:   "local",
	}
}
