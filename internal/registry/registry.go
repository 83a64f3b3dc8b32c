// Package registry maps game variant IDs to factories.
// Variants register themselves in init(); the CLI, the menu and the SSH
// server look them up by ID and list them with a board summary.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-samegame/internal/core"
)

// Game is the interface every game variant implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier used by CLI commands (e.g. "samegame").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset deals a new board.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing their state. The platform calls Reset on games that
// don't implement it.
type Resizer interface {
	Resize(screenW, screenH int)
}

// Describer is implemented by games that can summarize their board, such
// as "15x10, 3 colors". The summary is shown next to the title in listings.
type Describer interface {
	Summary() string
}

// GameInfo describes a registered game variant.
type GameInfo struct {
	ID      string
	Title   string
	Summary string // empty unless the game implements Describer
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if the ID is taken or the factory builds a game with another ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	if got := f().ID(); got != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, got))
	}

	factories[id] = f
}

// List describes all registered games, sorted by ID.
// Each entry comes from a fresh instance, so summaries reflect the options
// in effect at call time.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id, f := range factories {
		result = append(result, describe(id, f()))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

func describe(id string, g Game) GameInfo {
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Summary = d.Summary()
	}
	return info
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
