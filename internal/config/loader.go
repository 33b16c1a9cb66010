package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// LoadBalloon loads Balloon Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/balloon.yaml -> ./configs/balloon.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed, or validated is an
// error; the implicit locations are skipped when unusable.
func LoadBalloon(customPath string) (BalloonConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BalloonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BalloonConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/balloon.yaml"}
	if userCfgPath := userConfigPath("balloon.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultBalloonYAML); err == nil {
		return cfg, nil
	}
	return DefaultBalloonConfig(), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (BalloonConfig, error) {
	cfg := DefaultBalloonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BalloonConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BalloonConfig{}, err
	}
	return cfg, nil
}

// Validate reports every field that would make the game unplayable.
func (c BalloonConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalid, name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("physics.speed", c.Physics.Speed)
	positive("physics.bullet_speed_factor", c.Physics.BulletSpeedFactor)
	positive("balloon.width", c.Balloon.Width)
	positive("balloon.height", c.Balloon.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)

	if c.Balloon.Period < 1 {
		errs = append(errs, fmt.Errorf("%w: balloon.period must be at least 1, got %d", ErrInvalid, c.Balloon.Period))
	}
	if c.Balloon.RandomChance < 1 {
		errs = append(errs, fmt.Errorf("%w: balloon.random_chance must be at least 1, got %d", ErrInvalid, c.Balloon.RandomChance))
	}
	if c.Input.ReleaseAfterMs < 0 {
		errs = append(errs, fmt.Errorf("%w: input.release_after_ms must not be negative, got %d", ErrInvalid, c.Input.ReleaseAfterMs))
	}

	if c.Balloon.Width > c.Arena.Width || c.Balloon.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("%w: balloon does not fit in the arena", ErrInvalid))
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		errs = append(errs, fmt.Errorf("%w: player does not fit in the arena", ErrInvalid))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
