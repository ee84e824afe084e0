package editor

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/console"
)

// OptionsFromConfig builds editor options from the loaded configuration.
func OptionsFromConfig(cfg config.EditorConfig, logger *log.Logger, sinks ...console.Sink) Options {
	return Options{
		Console: console.Options{
			Prefix:          cfg.Console.Prefix,
			Timestamps:      cfg.Console.Timestamps,
			TimestampLayout: cfg.Console.TimestampLayout,
		},
		ClockLayout: cfg.Clock.Layout,
		Sinks:       sinks,
		Logger:      logger,
	}
}
