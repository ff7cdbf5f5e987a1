package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsMatchConstants(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	if cfg.Window.Width != ScreenWidth || cfg.Window.Height != ScreenHeight {
		t.Errorf("window size = %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height, ScreenWidth, ScreenHeight)
	}
	if got, want := cfg.Loop.TickDuration(), time.Second/240; got != want {
		t.Errorf("TickDuration() = %v, want %v", got, want)
	}
	if cfg.Loop.MaxFrameTime != 250*time.Millisecond {
		t.Errorf("MaxFrameTime = %v, want 250ms", cfg.Loop.MaxFrameTime)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Circle.EndX != CircleEndX {
		t.Errorf("EndX = %v, want %v", cfg.Circle.EndX, CircleEndX)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := `
[loop]
tick_rate = 120
max_frame_time = "100ms"

[circle]
duration = "2s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Loop.TickRate != 120 {
		t.Errorf("TickRate = %d, want 120", cfg.Loop.TickRate)
	}
	if cfg.Loop.MaxFrameTime != 100*time.Millisecond {
		t.Errorf("MaxFrameTime = %v, want 100ms", cfg.Loop.MaxFrameTime)
	}
	if cfg.Circle.Duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", cfg.Circle.Duration)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	// Не заданные в файле поля остаются по умолчанию
	if cfg.Circle.Radius != CircleRadius || cfg.Window.Title != WindowTitle {
		t.Errorf("untouched fields changed: radius=%v title=%q", cfg.Circle.Radius, cfg.Window.Title)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero tick rate", "[loop]\ntick_rate = 0\n"},
		{"negative max frame", "[loop]\nmax_frame_time = \"-1s\"\n"},
		{"negative radius", "[circle]\nradius = -5.0\n"},
		{"zero frame limit", "[window]\nframe_rate_limit = 0\n"},
		{"tick rate below 1ns", "[loop]\ntick_rate = 2000000000\n"},
		{"zero max frame", "[loop]\nmax_frame_time = \"0s\"\n"},
		{"max frame shorter than tick", "[loop]\ntick_rate = 240\nmax_frame_time = \"1ms\"\n"},
		{"zero duration", "[circle]\nduration = \"0s\"\n"},
		{"negative duration", "[circle]\nduration = \"-500ms\"\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"negative height", "[window]\nheight = -600\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[loop\ntick_rate = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
