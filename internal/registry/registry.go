// Package registry keeps the factories of the games the platform can run.
// Games register themselves in init() functions, so frontends and the CLI
// can discover them without importing concrete game packages.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// Game is the interface every frontend drives, one fixed tick at a time.
// Implementations hold pure logic; input polling, pacing and presentation
// belong to the platform.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "balloon").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state for a new session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick using that tick's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
