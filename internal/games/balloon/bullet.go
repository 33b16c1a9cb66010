package balloon

import "github.com/vovakirdan/balloon-shooter/internal/core"

// Bullet flies horizontally at a fixed speed until it leaves the arena's
// left edge or hits the balloon.
type Bullet struct {
	Box   core.Rect
	Speed float64 // Horizontal speed per frame, negative toward the left
	dead  bool
}

// NewBullet creates a bullet whose right edge is at right and whose vertical
// center is at centerY.
func NewBullet(right, centerY, w, h, speed float64) *Bullet {
	return &Bullet{
		Box:   core.NewRect(right-w, centerY-h/2, w, h),
		Speed: speed,
	}
}

// Advance moves the bullet and marks it dead once its right edge passes x=0.
func (b *Bullet) Advance() {
	b.Box = b.Box.Move(b.Speed, 0)
	if b.Box.Right() < 0 {
		b.dead = true
	}
}

// Kill marks the bullet for removal.
func (b *Bullet) Kill() {
	b.dead = true
}

// Dead reports whether the bullet should be removed from the world.
func (b *Bullet) Dead() bool {
	return b.dead
}
