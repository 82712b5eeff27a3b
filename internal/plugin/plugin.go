// Package plugin defines the lifecycle contract between the display host and
// its game plugins, plus a global registry of plugin factories. Plugins
// register themselves in init() functions so the host can discover and
// instantiate them without hardcoded dependencies.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/puzzle-deck/internal/core"
)

// Plugin is the lifecycle contract every hosted game implements. Plugins
// contain pure logic with no external dependencies (especially no Bubble Tea);
// the host owns input mapping, timing, and terminal rendering.
//
// All methods are called from the host's update loop on a single goroutine and
// must not block.
type Plugin interface {
	// ID returns a unique identifier (e.g. "gems", "millionaire").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init initializes or resets all plugin state. Called once when the host
	// opens the plugin and again on restart. The HostConfig provides the
	// display dimensions and RNG seed.
	Init(cfg core.HostConfig)

	// Update advances the plugin by one fixed tick and returns its status.
	// Input is abstracted to semantic actions.
	Update(in core.InputFrame) core.Status

	// Draw renders the current state into the provided screen buffer.
	// The buffer is pre-cleared before this call.
	Draw(dst *core.Screen)

	// Shutdown releases anything the plugin holds. The host calls it exactly
	// once before discarding the instance.
	Shutdown()

	// WantsClose reports that the plugin asks the host to close it
	// (e.g. the player chose "quit" on an internal screen).
	WantsClose() bool
}

// Info contains metadata about a registered plugin.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a plugin.
type Factory func() Plugin

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a plugin factory to the registry. Typically called from a
// plugin's init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("plugin: %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	p := f()
	titles[id] = p.Title()
}

// List returns information about all registered plugins, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new plugin by its ID.
func Create(id string) (Plugin, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("plugin: unknown plugin %q", id)
	}

	return f(), nil
}

// Exists checks if a plugin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
