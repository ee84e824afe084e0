package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

// DefaultEditorConfig returns the default editor configuration.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		Clock: ClockConfig{
			Interval: time.Second,
			Layout:   "15:04:05",
		},
		Console: ConsoleConfig{
			Prefix:          "LogPlay",
			Timestamps:      false,
			TimestampLayout: "15:04:05",
		},
		Theme: ThemeConfig{
			PlayActive: "#4EC9B0", // RGB(78, 201, 176)
			Accent:     "#3C3C3C",
			Border:     "240",
			Muted:      "241",
		},
		Storage: StorageConfig{
			Journal: true,
			DBPath:  "~/.editor/journal.db",
		},
		Log: LogConfig{
			Path:  "~/.editor/editor.log",
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultEditorYAML
}
