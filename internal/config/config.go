// Package config loads and validates the simulation configuration.
//
// The configuration is rejected wholesale at load time if any field is
// out of range; once a Config has passed Validate, the simulation core
// treats every value in it as trustworthy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive-exclusive [low, high) interval used for uniform
// sampling and for the endpoints of linear mappings.
type Range [2]float64

// Low returns the lower endpoint of the range.
func (r Range) Low() float64 { return r[0] }

// High returns the upper endpoint of the range.
func (r Range) High() float64 { return r[1] }

// PerceptionConfig holds the per-class perception radii of a vehicle.
type PerceptionConfig struct {
	Food   float64 `yaml:"food"`
	Poison float64 `yaml:"poison"`
}

// VehicleConfig describes how the vehicle population is spawned.
type VehicleConfig struct {
	Quantity              int              `yaml:"quantity"`
	SizeRange             Range            `yaml:"size_range"`
	MaxSpeedRange         Range            `yaml:"max_speed_range"`
	MaxSteeringForceRange Range            `yaml:"max_steering_force_range"`
	Perception            PerceptionConfig `yaml:"perception"`
}

// StimulusConfig describes how a stimulus population (food or poison)
// is spawned.
type StimulusConfig struct {
	Quantity  int   `yaml:"quantity"`
	SizeRange Range `yaml:"size_range"`
}

// Config is the root configuration record.
type Config struct {
	WindowSize [2]float64     `yaml:"window_size"`
	Fullscreen bool           `yaml:"fullscreen"`
	DesiredFPS int            `yaml:"desired_fps"`
	ShowFPS    bool           `yaml:"show_fps"`
	Seed       int64          `yaml:"seed"`
	Vehicle    VehicleConfig  `yaml:"vehicle"`
	Food       StimulusConfig `yaml:"food"`
	Poison     StimulusConfig `yaml:"poison"`
}

// Load reads a yaml configuration file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field the simulation core depends on and reports
// the first configuration fault it finds.
func (c *Config) Validate() error {
	if c.WindowSize[0] <= 0 || c.WindowSize[1] <= 0 {
		return fmt.Errorf("window_size must have positive width and height, got [%g, %g]", c.WindowSize[0], c.WindowSize[1])
	}
	if c.DesiredFPS <= 0 {
		return fmt.Errorf("desired_fps must be positive, got %d", c.DesiredFPS)
	}
	if c.Vehicle.Quantity < 0 {
		return fmt.Errorf("vehicle.quantity must be non-negative, got %d", c.Vehicle.Quantity)
	}
	if err := validateSizeRange("vehicle.size_range", c.Vehicle.SizeRange); err != nil {
		return err
	}
	if c.Vehicle.Perception.Food <= 0 {
		return fmt.Errorf("vehicle.perception.food must be positive, got %g", c.Vehicle.Perception.Food)
	}
	if c.Vehicle.Perception.Poison <= 0 {
		return fmt.Errorf("vehicle.perception.poison must be positive, got %g", c.Vehicle.Perception.Poison)
	}
	if c.Food.Quantity < 0 {
		return fmt.Errorf("food.quantity must be non-negative, got %d", c.Food.Quantity)
	}
	if err := validateSizeRange("food.size_range", c.Food.SizeRange); err != nil {
		return err
	}
	if c.Poison.Quantity < 0 {
		return fmt.Errorf("poison.quantity must be non-negative, got %d", c.Poison.Quantity)
	}
	if err := validateSizeRange("poison.size_range", c.Poison.SizeRange); err != nil {
		return err
	}
	return nil
}

// validateSizeRange rejects ranges that would break uniform sampling or the
// size-to-limit mappings. Speed and steering force ranges are deliberately
// not checked for order: a decreasing range means larger vehicles are
// slower, which is a valid configuration.
func validateSizeRange(field string, r Range) error {
	if r.Low() <= 0 {
		return fmt.Errorf("%s must have a positive lower bound, got %g", field, r.Low())
	}
	if r.Low() >= r.High() {
		return fmt.Errorf("%s must satisfy low < high, got [%g, %g]", field, r.Low(), r.High())
	}
	return nil
}
