package balloon

import "github.com/vovakirdan/balloon-shooter/internal/core"

// MoveState records which vertical key is driving the player.
type MoveState int

const (
	Still MoveState = iota
	MovingUp
	MovingDown
)

// String returns a human-readable name for the state.
func (s MoveState) String() string {
	switch s {
	case MovingUp:
		return "moving-up"
	case MovingDown:
		return "moving-down"
	default:
		return "still"
	}
}

// Player is the shooter on the right edge. It moves vertically and keeps at
// most one bullet in flight through its ready flag.
type Player struct {
	Box        core.Rect
	Speed      float64
	State      MoveState
	velocity   float64
	ready      bool
	shotsFired int
}

// NewPlayer places a player at the arena's mid-right, ready to fire.
func NewPlayer(arena core.Rect, w, h, speed float64) *Player {
	_, cy := arena.Center()
	return &Player{
		Box:   core.NewRect(arena.Right()-w, cy-h/2, w, h),
		Speed: speed,
		State: Still,
		ready: true,
	}
}

// MoveUp sets an upward velocity that lasts until Stop.
func (p *Player) MoveUp() {
	p.velocity = -p.Speed
	p.State = MovingUp
}

// MoveDown sets a downward velocity that lasts until Stop.
func (p *Player) MoveDown() {
	p.velocity = p.Speed
	p.State = MovingDown
}

// Stop clears the velocity.
func (p *Player) Stop() {
	p.velocity = 0
	p.State = Still
}

// Velocity returns the current vertical velocity.
func (p *Player) Velocity() float64 {
	return p.velocity
}

// Advance applies the velocity unless the move would leave the arena,
// in which case the player stays put.
func (p *Player) Advance(arena core.Rect) {
	next := p.Box.Move(0, p.velocity)
	if arena.ContainsRect(next) {
		p.Box = next
	}
}

// Fire spawns a bullet at the player's left edge and vertical center.
// It returns nil when a previous bullet has not been cleared yet.
func (p *Player) Fire(bulletW, bulletH, speedFactor float64) *Bullet {
	if !p.ready {
		return nil
	}
	p.shotsFired++
	_, cy := p.Box.Center()
	p.ready = false
	return NewBullet(p.Box.X, cy, bulletW, bulletH, -p.Speed*speedFactor)
}

// Reload makes the player ready to fire again.
// The world calls it only while no bullet is live.
func (p *Player) Reload() {
	p.ready = true
}

// Ready reports whether the next Fire will spawn a bullet.
func (p *Player) Ready() bool {
	return p.ready
}

// ShotsFired returns how many bullets the player has spawned.
func (p *Player) ShotsFired() int {
	return p.shotsFired
}
