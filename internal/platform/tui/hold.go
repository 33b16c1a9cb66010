package tui

import (
	"time"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// holdTracker turns a terminal's stream of key presses into press and release
// events. Terminals never report a release, and a held key arrives as repeated
// presses, so a held key counts as released once no repeat has arrived for
// the timeout.
type holdTracker struct {
	timeout time.Duration
	held    map[core.Action]time.Time // last press per held key
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{
		timeout: timeout,
		held:    make(map[core.Action]time.Time, 3),
	}
}

// heldActions are tracked across repeats, in expiry order.
var heldActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionFire}

func tracked(a core.Action) bool {
	return a == core.ActionUp || a == core.ActionDown || a == core.ActionFire
}

func vertical(a core.Action) bool {
	return a == core.ActionUp || a == core.ActionDown
}

// Press records a key press into frame. Only the first press of a held key
// becomes a KeyDown; repeats just extend the hold, so holding fire shoots
// once. Pressing the opposite direction takes over the hold without a release.
func (h *holdTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if !tracked(a) {
		frame.Set(a)
		return
	}
	if _, ok := h.held[a]; !ok {
		frame.Set(a)
	}
	if vertical(a) {
		for other := range h.held {
			if other != a && vertical(other) {
				delete(h.held, other)
			}
		}
	}
	h.held[a] = now
}

// Expire ends every hold older than the timeout. Vertical keys get a KeyUp
// in frame; Expire returns how many were released.
func (h *holdTracker) Expire(now time.Time, frame *core.InputFrame) int {
	released := 0
	for _, a := range heldActions {
		last, ok := h.held[a]
		if !ok || now.Sub(last) < h.timeout {
			continue
		}
		delete(h.held, a)
		if vertical(a) {
			frame.Release(a)
			released++
		}
	}
	return released
}
