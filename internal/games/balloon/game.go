// Package balloon implements Balloon Shooter: a player on the right edge fires
// at a balloon drifting along the left edge. The session ends when a bullet
// pops the balloon or the player quits.
package balloon

import (
	"math/rand"

	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/registry"
)

// GameID is the registry identifier.
const GameID = "balloon"

// Visual characters for rendering
const (
	BalloonChar = '●'
	PlayerChar  = '█'
	BulletChar  = '•'
)

// Status is the loop's state machine: Running until Terminated.
type Status int

const (
	Running Status = iota
	Terminated
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Game implements the Balloon Shooter loop on top of a World.
type Game struct {
	cfg     config.BalloonConfig
	runtime core.RuntimeConfig
	world   *World
	status  Status
	reason  core.EndReason
	frames  int
}

// New creates a game using the default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultBalloonConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Balloon Shooter"
}

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.BalloonConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.status = Running
	g.reason = core.EndNone
	g.frames = 0
}

// Step runs one frame: input, movement, collision, reload.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status == Terminated {
		return core.StepResult{State: g.State()}
	}
	g.frames++

	for _, ev := range in.Events() {
		if ev.Action == core.ActionQuit && ev.Kind == core.KeyDown {
			g.terminate(core.EndQuit)
			return core.StepResult{State: g.State()}
		}
		g.apply(ev)
	}

	g.world.Advance()

	if g.world.Collide() {
		g.terminate(core.EndHit)
		return core.StepResult{State: g.State()}
	}

	g.world.ReloadIfClear()

	return core.StepResult{State: g.State()}
}

// apply dispatches one key event to the player. Unbound actions are ignored.
func (g *Game) apply(ev core.InputEvent) {
	p := g.world.Player
	switch ev.Kind {
	case core.KeyDown:
		switch ev.Action {
		case core.ActionUp:
			p.MoveUp()
		case core.ActionDown:
			p.MoveDown()
		case core.ActionFire:
			g.world.Fire()
		}
	case core.KeyUp:
		if ev.Action == core.ActionUp || ev.Action == core.ActionDown {
			p.Stop()
		}
	}
}

func (g *Game) terminate(reason core.EndReason) {
	g.status = Terminated
	g.reason = reason
}

// Status returns the loop state.
func (g *Game) Status() Status {
	return g.status
}

// World exposes the session's entities.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.status == Terminated,
		Reason:   g.reason,
		Frames:   g.frames,
	}
}

// ShotsFired returns how many bullets the player has fired this session.
func (g *Game) ShotsFired() int {
	if g.world == nil {
		return 0
	}
	return g.world.Player.ShotsFired()
}

// Arena returns the playfield in arena units.
func (g *Game) Arena() core.Rect {
	if g.world == nil {
		return core.NewRect(0, 0, g.cfg.Arena.Width, g.cfg.Arena.Height)
	}
	return g.world.Arena
}

// Sprites returns every live entity in draw order.
func (g *Game) Sprites() []core.Sprite {
	if g.world == nil {
		return nil
	}
	sprites := make([]core.Sprite, 0, 2+len(g.world.Bullets))
	if g.world.Balloon != nil {
		sprites = append(sprites, core.Sprite{Box: g.world.Balloon.Box, Color: core.ColorBrightRed, Glyph: BalloonChar})
	}
	sprites = append(sprites, core.Sprite{Box: g.world.Player.Box, Color: core.ColorBrightCyan, Glyph: PlayerChar})
	for _, b := range g.world.Bullets {
		sprites = append(sprites, core.Sprite{Box: b.Box, Color: core.ColorGray, Glyph: BulletChar})
	}
	return sprites
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
