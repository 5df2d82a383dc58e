// Package config loads presentation settings for the budget table. Values
// come from defaults, then an optional yaml file, then BUDGET_* environment
// variables, then command-line flags merged by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BUDGET_"

type Config struct {
	Title            string        `yaml:"title" env:"TITLE"`
	WindowWidth      int           `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight     int           `yaml:"window_height" env:"WINDOW_HEIGHT"`
	HUDScale         int           `yaml:"hud_scale" env:"HUD_SCALE"`
	FeedbackDuration time.Duration `yaml:"feedback_duration" env:"FEEDBACK_DURATION"`
	CameraFrames     int           `yaml:"camera_frames" env:"CAMERA_FRAMES"` // frames for a full seat transition
	ParticleCount    int           `yaml:"particle_count" env:"PARTICLE_COUNT"`
	Seed             int64         `yaml:"seed" env:"SEED"` // 0 = time-based
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:            "Budget Table",
		WindowWidth:      1280,
		WindowHeight:     800,
		HUDScale:         2,
		FeedbackDuration: 3000 * time.Millisecond,
		CameraFrames:     100,
		ParticleCount:    100,
	}
}

// Load builds a Config from defaults, the yaml file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config yaml %s: %w", path, err)
	}
	return nil
}

// ParseEnv overlays BUDGET_* environment variables onto target. Unset
// variables leave the existing field values alone.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.WindowWidth != 0 {
		c.WindowWidth = o.WindowWidth
	}
	if o.WindowHeight != 0 {
		c.WindowHeight = o.WindowHeight
	}
	if o.HUDScale != 0 {
		c.HUDScale = o.HUDScale
	}
	if o.FeedbackDuration != 0 {
		c.FeedbackDuration = o.FeedbackDuration
	}
	if o.CameraFrames != 0 {
		c.CameraFrames = o.CameraFrames
	}
	if o.ParticleCount != 0 {
		c.ParticleCount = o.ParticleCount
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	return c
}

// Validate rejects settings the scene cannot draw with.
func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.HUDScale <= 0 {
		errs = append(errs, fmt.Errorf("hud_scale %d must be positive", c.HUDScale))
	}
	if c.FeedbackDuration <= 0 {
		errs = append(errs, fmt.Errorf("feedback_duration %s must be positive", c.FeedbackDuration))
	}
	if c.CameraFrames <= 0 {
		errs = append(errs, fmt.Errorf("camera_frames %d must be positive", c.CameraFrames))
	}
	if c.ParticleCount < 0 {
		errs = append(errs, fmt.Errorf("particle_count %d must not be negative", c.ParticleCount))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
