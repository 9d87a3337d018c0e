package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	// The embedded YAML must round-trip into the same values as the
	// compiled-in defaults, so the two never drift apart.
	serpent, err := LoadSerpent("")
	if err != nil {
		t.Fatalf("LoadSerpent: %v", err)
	}
	if !reflect.DeepEqual(serpent, DefaultSerpentConfig()) {
		t.Errorf("embedded serpent.yaml diverges from DefaultSerpentConfig:\n got %+v\nwant %+v",
			serpent, DefaultSerpentConfig())
	}

	railshot, err := LoadRailshot("")
	if err != nil {
		t.Fatalf("LoadRailshot: %v", err)
	}
	if railshot != DefaultRailshotConfig() {
		t.Errorf("embedded railshot.yaml diverges from DefaultRailshotConfig:\n got %+v\nwant %+v",
			railshot, DefaultRailshotConfig())
	}
}

func TestLoadSerpentCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "serpent.yaml")
	data := []byte("grid:\n  width: 48\n  height: 30\n  boundary: wrap\ntiming:\n  tick_ms: 80\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSerpent(path)
	if err != nil {
		t.Fatalf("LoadSerpent(%s): %v", path, err)
	}
	if cfg.Grid.Width != 48 || cfg.Grid.Height != 30 {
		t.Errorf("grid = %dx%d, expected 48x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.Boundary != "wrap" {
		t.Errorf("boundary = %q, expected wrap", cfg.Grid.Boundary)
	}
	if cfg.Timing.TickMillis != 80 {
		t.Errorf("tick_ms = %d, expected 80", cfg.Timing.TickMillis)
	}
}

func TestLoadSerpentMissingCustomPath(t *testing.T) {
	cfg, err := LoadSerpent(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
	// The fallback config must still be usable.
	if cfg.Grid.Width == 0 || cfg.Timing.TickMillis == 0 {
		t.Errorf("error fallback returned an unusable config: %+v", cfg)
	}
}

func TestLoadSerpentMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSerpent(path); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}
