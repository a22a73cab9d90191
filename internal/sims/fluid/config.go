package fluid

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the solver tunables. The defaults reproduce the reference
// wind-tunnel setup.
type Params struct {
	Overrelaxation float64 `yaml:"overrelaxation"`
	ProjIterations int     `yaml:"proj_iterations"`

	WithGravity bool    `yaml:"with_gravity"`
	Gravity     float64 `yaml:"gravity"`

	Density   float64 `yaml:"density"`
	WindSpeed float64 `yaml:"wind_speed"`

	NumBands  int `yaml:"num_bands"`
	BandWidth int `yaml:"band_width"`

	Dt       float64 `yaml:"dt"`
	CellSize float64 `yaml:"cell_size"`

	DemoObstacle bool `yaml:"demo_obstacle"`
}

// Config controls the fluid simulation dimensions and solver parameters.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 144,
		Params: Params{
			Overrelaxation: 1.94,
			ProjIterations: 100,
			WithGravity:    false,
			Gravity:        7.2,
			Density:        10.0,
			WindSpeed:      10.0,
			NumBands:       9,
			BandWidth:      5,
			Dt:             0.22,
			CellSize:       0.4,
			DemoObstacle:   false,
		},
	}
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["overrelaxation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Overrelaxation = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ProjIterations = parsed
		}
	}
	if v, ok := cfg["with_gravity"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.WithGravity = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Gravity = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Density = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.WindSpeed = parsed
		}
	}
	if v, ok := cfg["bands"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.NumBands = parsed
		}
	}
	if v, ok := cfg["band_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BandWidth = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Dt = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.CellSize = parsed
		}
	}
	if v, ok := cfg["demo_obstacle"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DemoObstacle = parsed
		}
	}
	return c
}
