package balloon

import (
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("balloon game should register itself")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Balloon Shooter" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionUp)
		case i%40 == 20:
			inputs[i].Release(core.ActionUp)
		}
	}

	run := func() []float64 {
		g := newTestGame(t, 12345)
		ys := make([]float64, 0, len(inputs))
		for _, in := range inputs {
			g.Step(in)
			ys = append(ys, g.World().Balloon.Box.Y, g.World().Player.Box.Y)
		}
		return ys
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at sample %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGameResetStartsFresh(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(press(core.ActionFire, core.ActionDown))
	g.Step(press(core.ActionQuit))

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	if g.Status() != Running || g.State().GameOver {
		t.Error("Reset should return to Running")
	}
	if g.State().Frames != 0 {
		t.Errorf("Reset should clear the frame count, got %d", g.State().Frames)
	}
	w := g.World()
	if len(w.Bullets) != 0 || !w.Player.Ready() || w.Player.ShotsFired() != 0 || w.Balloon == nil {
		t.Errorf("Reset should rebuild the world: %+v", w)
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, 1)

	result := g.Step(press(core.ActionQuit))

	if !result.State.GameOver || result.State.Reason != core.EndQuit {
		t.Fatalf("state = %+v, expected Terminated(Quit)", result.State)
	}

	// Terminal: further steps change nothing
	frames := result.State.Frames
	y := g.World().Balloon.Box.Y
	g.Step(press(core.ActionDown))
	if g.State().Frames != frames || g.World().Balloon.Box.Y != y {
		t.Error("a terminated game should not advance")
	}
}

func TestGameQuitSkipsRemainingEvents(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	in.Set(core.ActionFire)
	g.Step(in)

	if g.World().Player.ShotsFired() != 0 {
		t.Error("events after quit should not be applied")
	}
}

func TestGameKeyUpStopsPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.World().Player
	startY := p.Box.Y

	g.Step(press(core.ActionUp))
	if p.Box.Y != startY-3 || p.State != MovingUp {
		t.Fatalf("after KeyDown(Up): y = %v, state = %v", p.Box.Y, p.State)
	}

	g.Step(core.NewInputFrame())
	if p.Box.Y != startY-6 {
		t.Errorf("velocity should persist while held, y = %v", p.Box.Y)
	}

	release := core.NewInputFrame()
	release.Release(core.ActionUp)
	g.Step(release)
	if p.Box.Y != startY-6 || p.State != Still {
		t.Errorf("after KeyUp(Up): y = %v, state = %v", p.Box.Y, p.State)
	}
}

func TestGameReleaseOfOtherVerticalKeyStops(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.World().Player

	g.Step(press(core.ActionDown))
	release := core.NewInputFrame()
	release.Release(core.ActionUp)
	g.Step(release)

	if p.State != Still || p.Velocity() != 0 {
		t.Errorf("KeyUp on either vertical key clears velocity, state = %v", p.State)
	}
}

func TestGamePressAndReleaseInOneFrame(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.World().Player
	startY := p.Box.Y

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Release(core.ActionDown)
	g.Step(in)

	if p.Box.Y != startY {
		t.Errorf("events apply in order, player should not move: y = %v", p.Box.Y)
	}
}

func TestGameOneBulletInFlight(t *testing.T) {
	g := newTestGame(t, 3)
	w := g.World()
	w.Balloon = nil // nothing to hit, so bullets only leave by the edge

	fired := 0
	for i := 0; i < 600; i++ {
		before := w.Player.ShotsFired()
		g.Step(press(core.ActionFire))
		if len(w.Bullets) > 1 {
			t.Fatalf("frame %d: %d bullets live", i, len(w.Bullets))
		}
		if len(w.Bullets) == 1 && w.Player.Ready() {
			t.Fatalf("frame %d: player ready while a bullet is live", i)
		}
		if w.Player.ShotsFired() > before {
			fired++
		}
	}

	// A bullet spawned with its right edge at x=600 needs 134 frames to
	// clear the left edge, so shots land on frames 1, 135, 269, 403, 537.
	if fired != 5 {
		t.Errorf("fired %d bullets over 600 frames, expected 5", fired)
	}
}

func TestGameReloadOnlyWhenClear(t *testing.T) {
	g := newTestGame(t, 3)
	w := g.World()
	w.Balloon = nil

	g.Step(press(core.ActionFire))
	if w.Player.Ready() || len(w.Bullets) != 1 {
		t.Fatalf("after firing: ready = %v, bullets = %d", w.Player.Ready(), len(w.Bullets))
	}

	frames := 0
	for len(w.Bullets) > 0 {
		if w.Player.Ready() {
			t.Fatal("player reloaded while the bullet was live")
		}
		g.Step(core.NewInputFrame())
		frames++
		if frames > 1000 {
			t.Fatal("bullet never left the arena")
		}
	}

	if !w.Player.Ready() {
		t.Error("player should be ready once the bullet is gone")
	}
}

func TestGameHitTerminates(t *testing.T) {
	g := newTestGame(t, 5)
	w := g.World()

	_, cy := w.Balloon.Box.Center()
	w.Bullets = append(w.Bullets, NewBullet(w.Balloon.Box.Right()+2, cy, 10, 10, -4.5))
	w.Player.ready = false

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver || result.State.Reason != core.EndHit {
		t.Fatalf("state = %+v, expected Terminated(Hit)", result.State)
	}
	if w.Balloon != nil {
		t.Error("the balloon should be removed on a hit")
	}
	if len(w.Bullets) != 0 {
		t.Errorf("the colliding bullet should be removed, %d left", len(w.Bullets))
	}
	if w.Player.Ready() {
		t.Error("a hit ends the frame before reloading")
	}
}

func TestGameFiredBulletEventuallyHits(t *testing.T) {
	g := newTestGame(t, 9)
	w := g.World()

	// Park the balloon in the player's row and keep it there.
	_, pcy := w.Player.Box.Center()
	w.Balloon.Box.Y = pcy - w.Balloon.Box.H/2
	w.Balloon.Speed = 0

	g.Step(press(core.ActionFire))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.State().Reason != core.EndHit {
		t.Errorf("state = %+v, expected the shot to pop the balloon", g.State())
	}
}

func TestGameIgnoresUnboundInput(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.World().Player

	in := core.NewInputFrame()
	in.Release(core.ActionFire)
	in.Set(core.Action(42))
	g.Step(in)

	if p.State != Still || p.ShotsFired() != 0 || g.State().GameOver {
		t.Error("unbound input should be a no-op")
	}
}

func TestGameConfigure(t *testing.T) {
	g := New()

	bad := config.DefaultBalloonConfig()
	bad.Physics.Speed = 0
	if err := g.Configure(bad); err == nil {
		t.Error("Configure should reject an invalid config")
	}

	good := config.DefaultBalloonConfig()
	good.Physics.Speed = 5
	if err := g.Configure(good); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	g.Reset(core.DefaultConfig())
	if g.World().Player.Speed != 5 || g.World().Balloon.Speed != 5 {
		t.Error("Reset should use the configured speed")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, BalloonChar) {
		t.Error("balloon should be drawn")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player should be drawn")
	}
	if !strings.Contains(screen.Row(0), "shots: 0") {
		t.Errorf("HUD should show the shot count, row 0 = %q", screen.Row(0))
	}

	// Player hugs the right edge of the screen
	if screen.Get(79, 12) != PlayerChar {
		t.Errorf("expected player at the right edge, got %q", screen.Get(79, 12))
	}
	if screen.GetCell(0, 12).Color != core.ColorBrightRed {
		t.Errorf("expected balloon color at the left edge, got %+v", screen.GetCell(0, 12))
	}
}

func TestGameRenderBullet(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionFire))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.ContainsRune(screen.String(), BulletChar) {
		t.Error("live bullet should be drawn")
	}
	if !strings.Contains(screen.Row(0), "reloading") {
		t.Errorf("HUD should show the gun reloading, row 0 = %q", screen.Row(0))
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(1, 1)

	g.Render(screen) // must not panic
}

func TestGameSprites(t *testing.T) {
	g := newTestGame(t, 1)
	if n := len(g.Sprites()); n != 2 {
		t.Errorf("Sprites() = %d entries, expected balloon and player", n)
	}

	g.Step(press(core.ActionFire))
	if n := len(g.Sprites()); n != 3 {
		t.Errorf("Sprites() = %d entries, expected a bullet too", n)
	}

	if g.Arena() != core.NewRect(0, 0, 640, 480) {
		t.Errorf("Arena() = %+v", g.Arena())
	}
}

func TestGameRenderHitMessage(t *testing.T) {
	g := newTestGame(t, 5)
	w := g.World()
	_, cy := w.Balloon.Box.Center()
	w.Bullets = append(w.Bullets, NewBullet(w.Balloon.Box.Right()+2, cy, 10, 10, -4.5))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "POP!") {
		t.Errorf("hit should show the message box:\n%s", screen.String())
	}
	if !strings.Contains(screen.String(), "Balloon down after 0 shots") {
		t.Error("message should report the shot count")
	}
}
