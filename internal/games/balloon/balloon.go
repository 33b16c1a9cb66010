package balloon

import "github.com/vovakirdan/balloon-shooter/internal/core"

// Source is the randomness the balloon draws from.
// *rand.Rand satisfies it; tests pass scripted sources.
type Source interface {
	Intn(n int) int
}

// Balloon drifts up and down the left edge of the arena. It reverses when it
// leaves the arena through the top or bottom and, once every Period frames,
// with probability 1/RandomChance.
type Balloon struct {
	Box          core.Rect
	Direction    float64 // +1 moves down, -1 moves up
	Speed        float64 // Vertical speed magnitude per frame
	Period       int     // Frames between reversal draws
	RandomChance int     // Reversal odds are 1 in RandomChance
	frames       int     // Frames since the last reversal draw
}

// NewBalloon places a balloon at the arena's mid-left, heading in a random
// vertical direction.
func NewBalloon(arena core.Rect, w, h, speed float64, period, chance int, src Source) *Balloon {
	direction := 1.0
	if src.Intn(2) == 0 {
		direction = -1
	}
	_, cy := arena.Center()
	return &Balloon{
		Box:          core.NewRect(arena.X, cy-h/2, w, h),
		Direction:    direction,
		Speed:        speed,
		Period:       period,
		RandomChance: chance,
	}
}

// Frames returns the frame counter, which stays below Period.
func (b *Balloon) Frames() int {
	return b.frames
}

// Advance moves the balloon one frame and applies both reversal rules.
// It reports whether the balloon bounced off the top or bottom edge.
func (b *Balloon) Advance(arena core.Rect, src Source) bool {
	b.Box = b.Box.Move(0, b.Direction*b.Speed)

	bounced := false
	if !arena.ContainsRect(b.Box) && b.exitsVertically(arena) {
		b.Direction = -b.Direction
		bounced = true
	}

	b.frames++
	if b.frames >= b.Period {
		if src.Intn(b.RandomChance) == 0 {
			b.Direction = -b.Direction
		}
		b.frames = 0
	}
	return bounced
}

// exitsVertically reports whether both top corners or both bottom corners
// lie outside the arena. Horizontal exits cannot happen since x never changes.
func (b *Balloon) exitsVertically(arena core.Rect) bool {
	tl := !arena.Contains(b.Box.X, b.Box.Y)
	tr := !arena.Contains(b.Box.Right(), b.Box.Y)
	bl := !arena.Contains(b.Box.X, b.Box.Bottom())
	br := !arena.Contains(b.Box.Right(), b.Box.Bottom())
	return (tl && tr) || (bl && br)
}
