// Package registry keeps the set of playable mazes. Each game package
// registers its factories in init(), so the platform can list and create
// games without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mazeblast/internal/core"
)

// Game is what the platform drives: one frame of input in, one screen out.
// Implementations hold no terminal or Bubble Tea state.
type Game interface {
	// ID is the stable identifier used on the command line and in the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset loads the game's configuration and builds a fresh session.
	// It fails if the configuration or maze is invalid.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto dst, overwriting every cell.
	Render(dst *core.Screen)

	// State returns score, level, lives and lifecycle flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without losing their session.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
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

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
