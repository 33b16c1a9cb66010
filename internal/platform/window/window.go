// Package window runs a game in a desktop window through Ebitengine.
// The window shows the arena at its native size, one pixel per arena unit.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/registry"
)

// Game is a registry game that can also describe itself as sprites in arena units.
type Game interface {
	registry.Game
	Arena() core.Rect
	Sprites() []core.Sprite
}

// Options configures a window session.
type Options struct {
	Logger *log.Logger // Defaults to a discarding logger
	Scale  int         // Window scale factor, defaults to 1
}

type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings are polled in this order each tick.
var bindings = []binding{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:    {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorBrightRed:  {0xff, 0x40, 0x40, 0xff},
	core.ColorBrightCyan: {0x40, 0xe0, 0xff, 0xff},
	core.ColorGray:       {0x80, 0x80, 0x80, 0xff},
}

type shotCounter interface {
	ShotsFired() int
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	game   Game
	arena  core.Rect
	frame  core.InputFrame
	logger *log.Logger
	linger int // ticks left on the final frame after a hit
}

// Update polls the keyboard into one input frame and steps the game.
func (r *runner) Update() error {
	if r.game.State().GameOver {
		r.linger--
		if r.linger <= 0 || ebiten.IsWindowBeingClosed() || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}

	if ebiten.IsWindowBeingClosed() {
		r.frame.Set(core.ActionQuit)
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			r.frame.Set(b.action)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			r.frame.Release(b.action)
		}
	}

	result := r.game.Step(r.frame)
	r.frame.Clear()

	if result.State.GameOver {
		fields := []any{"reason", result.State.Reason, "frames", result.State.Frames}
		if sc, ok := r.game.(shotCounter); ok {
			fields = append(fields, "shots", sc.ShotsFired())
		}
		r.logger.Info("session ended", fields...)
		if result.State.Reason != core.EndHit {
			return ebiten.Termination
		}
		r.linger = ebiten.TPS() * 3 / 2
	}
	return nil
}

// Draw fills each sprite's bounding box and prints the HUD.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, s := range r.game.Sprites() {
		c, ok := palette[s.Color]
		if !ok {
			c = palette[core.ColorDefault]
		}
		vector.DrawFilledRect(screen,
			float32(s.Box.X-r.arena.X), float32(s.Box.Y-r.arena.Y),
			float32(s.Box.W), float32(s.Box.H),
			c, false)
	}

	hud := r.game.Title()
	if sc, ok := r.game.(shotCounter); ok {
		hud = fmt.Sprintf("%s  shots: %d", hud, sc.ShotsFired())
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	if st := r.game.State(); st.GameOver && st.Reason == core.EndHit {
		ebitenutil.DebugPrintAt(screen, "POP!", int(r.arena.W)/2-12, int(r.arena.H)/2-8)
	}
}

// Layout keeps the logical screen at the arena size.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(r.arena.W), int(r.arena.H)
}

// Run plays one session in a window and returns the final game state.
// Closing the window counts as quitting.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	game.Reset(cfg)
	arena := game.Arena()
	cfg.ScreenW, cfg.ScreenH = int(arena.W), int(arena.H)

	ebiten.SetWindowSize(cfg.ScreenW*opts.Scale, cfg.ScreenH*opts.Scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	opts.Logger.Info("session started",
		"game", game.ID(),
		"seed", cfg.Seed,
		"tps", cfg.TickRate,
		"window", fmt.Sprintf("%dx%d", cfg.ScreenW*opts.Scale, cfg.ScreenH*opts.Scale),
	)

	r := &runner{
		game:   game,
		arena:  arena,
		frame:  core.NewInputFrame(),
		logger: opts.Logger,
	}
	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return game.State(), fmt.Errorf("window: %w", err)
	}
	return game.State(), nil
}
