// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	WindowTitle    = "Animated Circle Slide with Frame Rates"
	FrameRateLimit = 240

	TickRate     = 240                    // физических шагов в секунду
	MaxFrameTime = 250 * time.Millisecond // защита от "spiral of death"

	CircleRadius   = 50.0
	CircleStartX   = 50.0
	CircleEndX     = 750.0
	CircleY        = 300.0
	CircleDuration = time.Second // время пролёта от края до края

	PanelX        = 10
	PanelY        = 10
	PanelWidth    = 180
	PanelHeight   = 64
	PanelPadding  = 8
	LineHeight    = 18
	PanelFontSize = 13
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	CircleColor      = color.RGBA{0, 255, 0, 255}
	PanelColor       = color.RGBA{25, 35, 45, 230}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
)

// ErrInvalid возвращается из Validate, если значения конфигурации не имеют смысла.
var ErrInvalid = errors.New("invalid config")

// Config - настраиваемые параметры демо. Ключи, которых нет в файле, сохраняют значения по умолчанию.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Circle  CircleConfig  `toml:"circle"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
	Title          string `toml:"title"`
	FrameRateLimit int    `toml:"frame_rate_limit"`
}

type LoopConfig struct {
	TickRate     int           `toml:"tick_rate"`
	MaxFrameTime time.Duration `toml:"max_frame_time"`
}

type CircleConfig struct {
	Radius   float64       `toml:"radius"`
	StartX   float64       `toml:"start_x"`
	EndX     float64       `toml:"end_x"`
	Y        float64       `toml:"y"`
	Duration time.Duration `toml:"duration"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// TickDuration - длительность одного фиксированного шага.
func (c LoopConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Defaults возвращает конфигурацию, совпадающую с константами пакета.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:          ScreenWidth,
			Height:         ScreenHeight,
			Title:          WindowTitle,
			FrameRateLimit: FrameRateLimit,
		},
		Loop: LoopConfig{
			TickRate:     TickRate,
			MaxFrameTime: MaxFrameTime,
		},
		Circle: CircleConfig{
			Radius:   CircleRadius,
			StartX:   CircleStartX,
			EndX:     CircleEndX,
			Y:        CircleY,
			Duration: CircleDuration,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load читает TOML-файл поверх значений по умолчанию. Пустой путь - только defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет значения, без которых цикл не может работать.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FrameRateLimit <= 0:
		return fmt.Errorf("%w: frame_rate_limit %d", ErrInvalid, c.Window.FrameRateLimit)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Loop.TickRate)
	case c.Loop.TickDuration() <= 0:
		// частота выше 1e9 даёт шаг 0 нс
		return fmt.Errorf("%w: tick_rate %d is above 1ns resolution", ErrInvalid, c.Loop.TickRate)
	case c.Loop.MaxFrameTime < c.Loop.TickDuration():
		return fmt.Errorf("%w: max_frame_time %s shorter than tick %s", ErrInvalid, c.Loop.MaxFrameTime, c.Loop.TickDuration())
	case c.Circle.Radius <= 0:
		return fmt.Errorf("%w: circle radius %g", ErrInvalid, c.Circle.Radius)
	case c.Circle.Duration <= 0:
		return fmt.Errorf("%w: circle duration %s", ErrInvalid, c.Circle.Duration)
	}
	return nil
}
