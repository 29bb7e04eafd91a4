// Package config holds the per-program settings. Each program starts from its
// own defaults and optionally overlays them with 'config/<program>.toml'.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Window struct {
	Title      string     `toml:"title"`
	Width      int32      `toml:"width"`
	Height     int32      `toml:"height"`
	VSync      bool       `toml:"vsync"`
	MSAA       bool       `toml:"msaa"`
	ClearColor [4]float32 `toml:"clear_color"`
}

type Camera struct {
	Pos              [3]float32 `toml:"pos"`
	MoveSpeed        float32    `toml:"move_speed"`
	MouseSensitivity float32    `toml:"mouse_sensitivity"`
	Zoom             float32    `toml:"zoom"`
}

type Config struct {
	// ResDir is the directory holding 'shaders', 'textures' and 'models'
	ResDir string `toml:"res_dir"`
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
}

func (c *Config) ResPath(elem ...string) string {
	return filepath.Join(append([]string{c.ResDir}, elem...)...)
}

// Decode overlays the TOML in data on top of c. Keys not present in data keep their current values,
// while unknown keys are reported as errors.
func (c *Config) Decode(data []byte) error {

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive. Got (%d, %d)", c.Window.Width, c.Window.Height)
	}

	if c.Camera.Zoom < 1 || c.Camera.Zoom > 45 {
		return fmt.Errorf("camera zoom must be within [1, 45]. Got %f", c.Camera.Zoom)
	}

	return nil
}

// Load returns defaults overlaid with the contents of path. A missing file is not an error.
func Load(path string, defaults Config) (Config, error) {

	cfg := defaults

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := cfg.Decode(data); err != nil {
		return Config{}, fmt.Errorf("config file '%s': %w", path, err)
	}

	return cfg, cfg.Validate()
}

// ProgramPath is where the config of the named program is looked up
func ProgramPath(programName string) string {
	return filepath.Join("config", programName+".toml")
}
