// Package registry provides a global registry for mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/lunaris/internal/game"
)

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID          string
	Name        string
	Description string
}

// Factory creates a new mode instance drawing randomness from rng.
type Factory func(rng *rand.Rand) game.Mode

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ModeInfo)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a mode's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get name and description by creating a temporary instance
	m := f(rand.New(rand.NewSource(0)))
	infos[id] = ModeInfo{
		ID:          id,
		Name:        m.Name(),
		Description: m.Description(),
	}
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns metadata for a registered mode.
func Info(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new mode by its ID.
// A nil rng is replaced by one seeded with 1.
// Returns an error if the mode ID is not registered.
func Create(id string, rng *rand.Rand) (game.Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return f(rng), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
