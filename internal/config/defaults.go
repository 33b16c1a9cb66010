package config

import (
	_ "embed"
)

//go:embed defaults/balloon.yaml
var defaultBalloonYAML []byte

// DefaultBalloonConfig returns the default Balloon Shooter configuration.
func DefaultBalloonConfig() BalloonConfig {
	return BalloonConfig{
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Speed:             3,
			BulletSpeedFactor: 1.5,
		},
		Balloon: BalloonParams{
			Width:        40,
			Height:       60,
			Period:       25,
			RandomChance: 5,
		},
		Player: SpriteSize{
			Width:  40,
			Height: 40,
		},
		Bullet: SpriteSize{
			Width:  10,
			Height: 10,
		},
		Input: InputConfig{
			ReleaseAfterMs: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBalloonYAML
}
