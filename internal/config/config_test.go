package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1200 {
		t.Errorf("expected width 1200, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Speed != 300.0 {
		t.Errorf("expected camera speed 300, got %f", cfg.Camera.Speed)
	}
	if cfg.Camera.StartHeight != 500.0 {
		t.Errorf("expected start height 500, got %f", cfg.Camera.StartHeight)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipterra.yaml")

	yaml := `graphics:
  width: 1920
  height: 1080
  fullscreen: true
camera:
  speed: 150
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("file values not applied: %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("fullscreen override not applied")
	}
	if cfg.Camera.Speed != 150 {
		t.Errorf("camera speed override: got %f", cfg.Camera.Speed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level override: got %s", cfg.Logging.Level)
	}
	// Values absent from the file keep their defaults.
	if cfg.Camera.StartHeight != 500.0 {
		t.Errorf("missing key should keep default, got %f", cfg.Camera.StartHeight)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "clipterra.yaml")

	cfg := Default()
	cfg.Graphics.Width = 640
	cfg.Camera.Speed = 42

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 640 {
		t.Errorf("round-trip width: got %d, want 640", loaded.Graphics.Width)
	}
	if loaded.Camera.Speed != 42 {
		t.Errorf("round-trip speed: got %f, want 42", loaded.Camera.Speed)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
