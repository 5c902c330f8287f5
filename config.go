package sapling

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window and loop settings of an App.
type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	ClearColor Color  `yaml:"clearColor"`
	Resizable  bool   `yaml:"resizable"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
	// Debug logs per-frame timings and warns about oversized node lists.
	Debug bool `yaml:"debug"`
	// ShowFPS adds an FPS widget as a global node.
	ShowFPS bool `yaml:"showFPS"`
	// ScreenshotDir is where App.Screenshot writes its PNG files.
	ScreenshotDir string `yaml:"screenshotDir"`
}

// DefaultConfig returns a 640x480 window ticking at 60 TPS on black.
func DefaultConfig() Config {
	return Config{
		Title:         "sapling",
		Width:         640,
		Height:        480,
		TPS:           60,
		ClearColor:    ColorBlack,
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the result.
// Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid config: window size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid config: tps %d", c.TPS)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
