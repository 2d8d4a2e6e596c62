// Package config loads DragBoard settings with viper. Values come from
// built-in defaults, then an optional config file, then DRAGBOARD_* env vars.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"DragBoard/internal/drag"
)

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"

	EnvPrefix = "DRAGBOARD"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

type Config struct {
	Frontend string         `mapstructure:"frontend"`
	Log      LogConfig      `mapstructure:"log"`
	Window   WindowConfig   `mapstructure:"window"`
	Rect     RectConfig     `mapstructure:"rect"`
	Drag     DragConfig     `mapstructure:"drag"`
	Terminal TerminalConfig `mapstructure:"terminal"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	// Output is a zap sink: stderr, stdout or a file path.
	Output string `mapstructure:"output"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// RectConfig is the starting placement of the draggable rectangle.
type RectConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

type DragConfig struct {
	Style   string `mapstructure:"style"`
	Reentry string `mapstructure:"reentry"`
	Buffer  int    `mapstructure:"buffer"`
}

// TerminalConfig sizes the rectangle in cells for the terminal front-end.
type TerminalConfig struct {
	Cols int `mapstructure:"cols"`
	Rows int `mapstructure:"rows"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", FrontendDesktop)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", true)
	v.SetDefault("log.output", "stderr")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("rect.x", 10)
	v.SetDefault("rect.y", 10)
	v.SetDefault("rect.width", 120)
	v.SetDefault("rect.height", 80)
	v.SetDefault("drag.style", drag.StyleSync.String())
	v.SetDefault("drag.reentry", drag.ReentryReset.String())
	v.SetDefault("drag.buffer", 64)
	v.SetDefault("terminal.cols", 12)
	v.SetDefault("terminal.rows", 4)
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if _, err := c.Drag.ParsedStyle(); err != nil {
		return err
	}
	if _, err := c.Drag.Policy(); err != nil {
		return err
	}
	if c.Drag.Buffer < 0 {
		return fmt.Errorf("drag.buffer must not be negative, got %d", c.Drag.Buffer)
	}
	return nil
}

func (d DragConfig) ParsedStyle() (drag.Style, error) {
	return drag.ParseStyle(d.Style)
}

func (d DragConfig) Policy() (drag.ReentryPolicy, error) {
	return drag.ParseReentryPolicy(d.Reentry)
}

// Seed is the configured starting position of the rectangle.
func (r RectConfig) Seed() drag.Point {
	return drag.Pt(r.X, r.Y)
}
