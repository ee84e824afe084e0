package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-editor/internal/config"
	"github.com/vovakirdan/tui-editor/internal/storage"
)

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.EditorConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagNoJournal {
		cfg.Storage.Journal = false
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.EditorConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// localUser returns the login name of the current user.
func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}

// openJournal opens the journal store and starts a new session.
// Returns nil values when journaling is disabled or unavailable; the editor
// works without it.
func openJournal(cfg config.EditorConfig, logger *log.Logger) (*storage.Store, *storage.Journal) {
	if !cfg.Storage.Journal || cfg.Storage.DBPath == "" {
		return nil, nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open console journal: %v\n", err)
		logger.Warn("journal unavailable", "error", err)
		return nil, nil
	}

	name := localUser()
	sessionID := fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	if err := store.BeginSession(sessionID, name, time.Now()); err != nil {
		logger.Warn("journal unavailable", "error", err)
		store.Close()
		return nil, nil
	}

	return store, storage.NewJournal(store, sessionID)
}
