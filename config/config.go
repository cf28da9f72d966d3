package config

import (
	"errors"
	"fmt"
	"os"

	"gioui.org/f32"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"runedrag/engine"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the game settings.
type Config struct {
	Board    BoardConfig  `yaml:"board"`
	Layout   LayoutConfig `yaml:"layout"`
	Window   WindowConfig `yaml:"window"`
	Seed     int64        `yaml:"seed"`
	LogLevel string       `yaml:"log_level"`
}

// BoardConfig sets the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LayoutConfig places the grid in the window, in pixels.
type LayoutConfig struct {
	OffsetX  float32 `yaml:"offset_x"`
	OffsetY  float32 `yaml:"offset_y"`
	TileSize float32 `yaml:"tile_size"`
}

// WindowConfig is the initial window size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the settings the game ships with.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Rows: 5,
			Cols: 6,
		},
		Layout: LayoutConfig{
			OffsetX:  50,
			OffsetY:  300,
			TileSize: 100,
		},
		Window: WindowConfig{
			Width:  720,
			Height: 800,
		},
		Seed:     0,
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	}
	if c.Layout.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalid, c.Layout.TileSize)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size must not be negative", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// EngineLayout converts the layout section for the engine.
func (c *Config) EngineLayout() engine.Layout {
	return engine.Layout{
		Origin:   f32.Point{X: c.Layout.OffsetX, Y: c.Layout.OffsetY},
		TileSize: c.Layout.TileSize,
	}
}

// Level returns the parsed log level, info when unset.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
