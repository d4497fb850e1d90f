package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "vitrine") {
		t.Errorf("GetConfigDir() = %v, should contain 'vitrine'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(PathEnvVar, "/tmp/from-env.yaml")

	got, err := ResolvePath("/tmp/explicit.yaml")
	if err != nil || got != "/tmp/explicit.yaml" {
		t.Errorf("ResolvePath(explicit) = %q, %v", got, err)
	}

	got, err = ResolvePath("")
	if err != nil || got != "/tmp/from-env.yaml" {
		t.Errorf("ResolvePath(env) = %q, %v", got, err)
	}

	t.Setenv(PathEnvVar, "")
	got, err = ResolvePath("")
	if err != nil {
		t.Fatalf("ResolvePath(default) error = %v", err)
	}
	if filepath.Base(got) != "config.yaml" {
		t.Errorf("default path should end with config.yaml, got %q", got)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	opts := cfg.Carousel.Options()
	if opts.AutoplayDelay != 5*time.Second {
		t.Errorf("AutoplayDelay = %v, want 5s", opts.AutoplayDelay)
	}
	if opts.Gap != 25 || opts.DragThreshold != 50 {
		t.Errorf("Gap/DragThreshold = %d/%d, want 25/50", opts.Gap, opts.DragThreshold)
	}
	if cfg.Page.ResizeDebounce() != 250*time.Millisecond {
		t.Errorf("ResizeDebounce = %v, want 250ms", cfg.Page.ResizeDebounce())
	}
	if cfg.Page.ToastLifetime() != 3*time.Second {
		t.Errorf("ToastLifetime = %v, want 3s", cfg.Page.ToastLifetime())
	}
	if len(cfg.Slides) == 0 {
		t.Error("default config should ship demo slides")
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
carousel:
  gap: 0
  autoplay_delay_ms: 1500
slides:
  - title: Only
    body: "# One"
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Carousel.Gap != 0 {
		t.Errorf("Gap = %d, want explicit 0", cfg.Carousel.Gap)
	}
	if cfg.Carousel.AutoplayDelayMS != 1500 {
		t.Errorf("AutoplayDelayMS = %d, want 1500", cfg.Carousel.AutoplayDelayMS)
	}
	if cfg.Carousel.DragThreshold != 50 {
		t.Errorf("DragThreshold = %d, want default 50", cfg.Carousel.DragThreshold)
	}
	if !cfg.Carousel.ShowDots || !cfg.Carousel.ShowNav {
		t.Error("ShowDots/ShowNav should keep their defaults")
	}
	if len(cfg.Slides) != 1 || cfg.Slides[0].Title != "Only" {
		t.Errorf("Slides = %+v, want the single slide from the file", cfg.Slides)
	}
}

func TestParseEmptyDeck(t *testing.T) {
	cfg, err := Parse([]byte("slides: []\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Slides) != 0 {
		t.Errorf("len(Slides) = %d, want 0", len(cfg.Slides))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Bad version", "version: 2\n"},
		{"Negative delay", "carousel:\n  autoplay_delay_ms: -1\n"},
		{"Negative debounce", "page:\n  resize_debounce_ms: -5\n"},
		{"Zero touch step", "carousel:\n  touch_step: 0\n"},
		{"Zero slide height", "carousel:\n  slide_height: 0\n"},
		{"Empty slide", "slides:\n  - caption: nothing else\n"},
		{"Malformed yaml", "carousel: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.yaml)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Page.Title = "Test Page"
	cfg.Slides = cfg.Slides[:2]
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Vitrine Configuration File") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Page.Title != "Test Page" || len(loaded.Slides) != 2 {
		t.Errorf("loaded config = %+v, want title and two slides", loaded.Page)
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Page.Title != DefaultTitle {
		t.Errorf("Title = %q, want default", cfg.Page.Title)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("second WriteDefault without force should fail")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) error = %v", err)
	}
}
