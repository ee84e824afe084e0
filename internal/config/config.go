// Package config provides YAML-based configuration loading for the editor.
package config

import (
	"errors"
	"fmt"
	"time"
)

// EditorConfig contains all configuration for the editor shell.
type EditorConfig struct {
	Clock   ClockConfig   `yaml:"clock"`
	Console ConsoleConfig `yaml:"console"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// ClockConfig defines the status clock.
type ClockConfig struct {
	Interval time.Duration `yaml:"interval"`
	Layout   string        `yaml:"layout"` // Go time layout
}

// ConsoleConfig defines console line formatting.
type ConsoleConfig struct {
	Prefix          string `yaml:"prefix"`
	Timestamps      bool   `yaml:"timestamps"` // Prepend "[<time>] " to each line
	TimestampLayout string `yaml:"timestamp_layout"`
}

// ThemeConfig defines terminal colors (hex or ANSI 256 codes).
type ThemeConfig struct {
	PlayActive string `yaml:"play_active"`
	Accent     string `yaml:"accent"`
	Border     string `yaml:"border"`
	Muted      string `yaml:"muted"`
}

// StorageConfig defines the console journal.
type StorageConfig struct {
	Journal bool   `yaml:"journal"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Path  string `yaml:"path"` // Empty logs to stderr
	Level string `yaml:"level"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validation errors.
var (
	ErrClockInterval = errors.New("clock interval must be positive")
	ErrClockLayout   = errors.New("clock layout must not be empty")
	ErrPrefix        = errors.New("console prefix must not be empty")
)

// Validate reports the first invalid setting.
func (c EditorConfig) Validate() error {
	if c.Clock.Interval <= 0 {
		return fmt.Errorf("config: %w (got %v)", ErrClockInterval, c.Clock.Interval)
	}
	if c.Clock.Layout == "" {
		return fmt.Errorf("config: %w", ErrClockLayout)
	}
	if c.Console.Prefix == "" {
		return fmt.Errorf("config: %w", ErrPrefix)
	}
	return nil
}
