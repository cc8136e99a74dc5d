package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Bake.IndirectSize != 384 {
		t.Errorf("indirect size = %d, want 384", cfg.Bake.IndirectSize)
	}
	if cfg.Bake.IrradianceSize != 128 {
		t.Errorf("irradiance size = %d, want 128", cfg.Bake.IrradianceSize)
	}
	if cfg.Bake.Samples != 1024 {
		t.Errorf("samples = %d, want 1024", cfg.Bake.Samples)
	}
	if !cfg.Post.Bloom || !cfg.Post.FXAA {
		t.Error("post effects disabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Logging.Level)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.yaml")

	cfg := Default()
	cfg.Render.Width = 640
	cfg.Render.Height = 480
	cfg.Post.BloomThreshold = 2.25

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Render.Width != 640 || loaded.Render.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", loaded.Render.Width, loaded.Render.Height)
	}
	if loaded.Post.BloomThreshold != 2.25 {
		t.Errorf("bloom threshold = %v, want 2.25", loaded.Post.BloomThreshold)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.yaml")

	partial := []byte("bake:\n  samples: 256\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Bake.Samples != 256 {
		t.Errorf("samples = %d, want 256 from file", cfg.Bake.Samples)
	}
	if cfg.Bake.IndirectSize != 384 {
		t.Errorf("indirect size = %d, want untouched default", cfg.Bake.IndirectSize)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.yaml")

	if err := os.WriteFile(path, []byte("bake: [not a map"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
