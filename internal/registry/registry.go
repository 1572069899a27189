// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so hosts and the CLI can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pewpew/internal/actor"
	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
)

// Game is the interface every game session implements.
// Games hold pure logic with no Bubble Tea or raylib dependencies. Hosts own
// the event loop, timing and drawing, and pass the per-session context into
// every call.
type Game interface {
	// ID returns a unique identifier (e.g., "pewpew"), used by the CLI and storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the session for the context's world size.
	Reset(ctx *core.Context)

	// Update advances the simulation by exactly one fixed tick of ctx.DT.
	Update(ctx *core.Context) core.StepResult

	// Render draws the current state into a character screen buffer.
	Render(dst *core.Screen)

	// State returns the current HUD and flow state.
	State() core.GameState

	// Actors returns the live actors for hosts that draw them natively.
	Actors() []actor.Actor

	// Stats returns what happened so far in this session.
	Stats() core.RunStats

	// KeyDown and KeyUp receive key transitions from the host.
	KeyDown(ctx *core.Context, k core.Key)
	KeyUp(ctx *core.Context, k core.Key)

	// MouseDown and MouseUp receive button transitions at screen pixel (x, y).
	MouseDown(ctx *core.Context, btn core.MouseButton, x, y float64)
	MouseUp(ctx *core.Context, btn core.MouseButton, x, y float64)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance from the loaded configuration.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.DefaultConfig())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
