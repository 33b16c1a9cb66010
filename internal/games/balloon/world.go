package balloon

import (
	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// World owns every entity of one session. The game loop is its only mutator.
type World struct {
	Arena   core.Rect
	Balloon *Balloon // nil once popped
	Player  *Player
	Bullets []*Bullet

	rng          Source
	bulletW      float64
	bulletH      float64
	bulletFactor float64
}

// NewWorld lays out a fresh session from cfg, drawing from src.
func NewWorld(cfg config.BalloonConfig, src Source) *World {
	arena := core.NewRect(0, 0, cfg.Arena.Width, cfg.Arena.Height)
	speed := cfg.Physics.Speed

	return &World{
		Arena: arena,
		Balloon: NewBalloon(arena, cfg.Balloon.Width, cfg.Balloon.Height, speed,
			cfg.Balloon.Period, cfg.Balloon.RandomChance, src),
		Player:       NewPlayer(arena, cfg.Player.Width, cfg.Player.Height, speed),
		Bullets:      make([]*Bullet, 0, 1),
		rng:          src,
		bulletW:      cfg.Bullet.Width,
		bulletH:      cfg.Bullet.Height,
		bulletFactor: cfg.Physics.BulletSpeedFactor,
	}
}

// Fire asks the player to shoot and takes ownership of the new bullet.
func (w *World) Fire() {
	if b := w.Player.Fire(w.bulletW, w.bulletH, w.bulletFactor); b != nil {
		w.Bullets = append(w.Bullets, b)
	}
}

// Advance moves the balloon, then the player, then every bullet, and drops
// bullets that left the arena.
func (w *World) Advance() {
	if w.Balloon != nil {
		w.Balloon.Advance(w.Arena, w.rng)
	}
	w.Player.Advance(w.Arena)
	for _, b := range w.Bullets {
		b.Advance()
	}
	w.sweep()
}

// Collide tests every live bullet against the balloon. On a hit both are
// removed and Collide returns true.
func (w *World) Collide() bool {
	if w.Balloon == nil {
		return false
	}
	hit := false
	for _, b := range w.Bullets {
		if b.Box.Intersects(w.Balloon.Box) {
			b.Kill()
			hit = true
		}
	}
	if hit {
		w.Balloon = nil
		w.sweep()
	}
	return hit
}

// ReloadIfClear readies the player when no bullet is in flight.
func (w *World) ReloadIfClear() {
	if len(w.Bullets) == 0 {
		w.Player.Reload()
	}
}

func (w *World) sweep() {
	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if !b.Dead() {
			live = append(live, b)
		}
	}
	clear(w.Bullets[len(live):])
	w.Bullets = live
}
