package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultEditorConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultEditorConfig()) {
		t.Errorf("embedded defaults drift from DefaultEditorConfig():\n got %+v\nwant %+v", cfg, DefaultEditorConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := []byte("clock:\n  interval: 250ms\nconsole:\n  timestamps: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Clock.Interval != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", cfg.Clock.Interval)
	}
	if !cfg.Console.Timestamps {
		t.Error("timestamps not enabled")
	}
	// Untouched keys keep their defaults
	if cfg.Console.Prefix != "LogPlay" || cfg.Clock.Layout != "15:04:05" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("clock: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("clock:\n  interval: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrClockInterval) {
		t.Errorf("Load(invalid) error = %v, want ErrClockInterval", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultEditorConfig()) {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "editor.yaml"), []byte("console:\n  prefix: LogEditor\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Console.Prefix != "LogEditor" {
		t.Errorf("prefix = %q, want LogEditor", cfg.Console.Prefix)
	}
}

func TestLoadSearchPathParseErrors(t *testing.T) {
	bad := []byte("clock: [\n")

	t.Run("user config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		chdir(t, t.TempDir())

		if err := os.MkdirAll(filepath.Join(home, ".editor"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(home, ".editor", "config.yaml"), bad, 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(""); err == nil {
			t.Error("malformed ~/.editor/config.yaml should fail to load")
		}
	})

	t.Run("local config", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())

		if err := os.MkdirAll("configs", 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("configs", "editor.yaml"), bad, 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(""); err == nil {
			t.Error("malformed configs/editor.yaml should fail to load")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EditorConfig)
		want   error
	}{
		{"negative interval", func(c *EditorConfig) { c.Clock.Interval = -time.Second }, ErrClockInterval},
		{"empty layout", func(c *EditorConfig) { c.Clock.Layout = "" }, ErrClockLayout},
		{"empty prefix", func(c *EditorConfig) { c.Console.Prefix = "" }, ErrPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEditorConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.editor/journal.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".editor", "journal.db"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
