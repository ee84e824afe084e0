// Package core holds the small value types shared by the editor logic and the
// platform layer: commands, indicator colors and runtime configuration.
package core

import "time"

// RuntimeConfig contains configuration passed to the editor at startup.
type RuntimeConfig struct {
	ScreenW       int           // Screen width in characters
	ScreenH       int           // Screen height in characters
	ClockInterval time.Duration // Status clock refresh interval
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		ClockInterval: time.Second,
	}
}
