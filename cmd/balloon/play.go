package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
	"github.com/vovakirdan/balloon-shooter/internal/games/balloon"
	"github.com/vovakirdan/balloon-shooter/internal/platform/tui"
	"github.com/vovakirdan/balloon-shooter/internal/platform/window"
	"github.com/vovakirdan/balloon-shooter/internal/registry"
)

const (
	frontendTUI    = "tui"
	frontendWindow = "window"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (balloon by default).

Controls:
  Up/W/K     - Move up
  Down/S/J   - Move down
  Space      - Fire (one bullet in flight at a time, once per press)
  Q/Esc      - Quit
  Ctrl+S     - Save a text screenshot (terminal only)

Terminals do not report key releases: the player keeps moving while the key
repeats and stops once no repeat arrives for input.release_after_ms. Holding
Space fires once; let go for that long to fire again.

After a hit the final frame stays up briefly; any key closes it.

Examples:
  balloon play
  balloon play --frontend window --scale 2
  balloon play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// configurable is implemented by games that take a BalloonConfig.
type configurable interface {
	Configure(cfg config.BalloonConfig) error
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := balloon.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagFrontend != frontendTUI && flagFrontend != frontendWindow {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendTUI, frontendWindow)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(flagFrontend)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'balloon list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	releaseAfter := tui.DefaultReleaseAfter
	if cg, ok := game.(configurable); ok {
		cfg, err := config.LoadBalloon(flagConfig)
		if err != nil {
			return err
		}
		if err := cg.Configure(cfg); err != nil {
			return err
		}
		releaseAfter = time.Duration(cfg.Input.ReleaseAfterMs) * time.Millisecond
		logger.Debug("config loaded", "arena", fmt.Sprintf("%vx%v", cfg.Arena.Width, cfg.Arena.Height))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	}

	var state core.GameState
	switch flagFrontend {
	case frontendWindow:
		wg, ok := game.(window.Game)
		if !ok {
			return fmt.Errorf("game %q cannot run in a window", gameID)
		}
		state, err = window.Run(wg, rc, window.Options{Logger: logger, Scale: flagScale})
	default:
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW, rc.ScreenH = w, h
		}
		state, err = tui.Run(game, rc, tui.Options{Logger: logger, ReleaseAfter: releaseAfter})
	}
	if err != nil {
		return err
	}

	logger.Info("game over", "game", gameID, "reason", state.Reason, "frames", state.Frames, "seed", seed)
	if state.Reason == core.EndHit {
		fmt.Fprintln(cmd.OutOrStdout(), "Pop! You hit the balloon.")
	}
	return nil
}
