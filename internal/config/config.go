// Package config provides YAML-based game configuration loading and
// validation for the balloon shooter.
package config

// BalloonConfig contains all configuration for the Balloon Shooter game.
type BalloonConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Physics PhysicsConfig `yaml:"physics"`
	Balloon BalloonParams `yaml:"balloon"`
	Player  SpriteSize    `yaml:"player"`
	Bullet  SpriteSize    `yaml:"bullet"`
	Input   InputConfig   `yaml:"input"`
}

// ArenaConfig defines the playfield in arena units.
// The window frontend uses one unit per pixel; the terminal frontend scales.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines movement speeds.
type PhysicsConfig struct {
	Speed             float64 `yaml:"speed"`               // Player and balloon speed per tick
	BulletSpeedFactor float64 `yaml:"bullet_speed_factor"` // Bullet speed as a multiple of Speed
}

// BalloonParams defines the balloon's size and its random reversal cadence.
type BalloonParams struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Period       int     `yaml:"period"`        // Frames between reversal draws
	RandomChance int     `yaml:"random_chance"` // Reversal happens with probability 1/RandomChance
}

// SpriteSize is a bounding box size.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig tunes input handling for frontends without key-release events.
type InputConfig struct {
	ReleaseAfterMs int `yaml:"release_after_ms"`
}
