// Package registry provides a global registry of built-in layout presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and build them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pathgrid/internal/layouts"
)

// ErrUnknownPreset is returned by Create and Build for unregistered IDs.
var ErrUnknownPreset = errors.New("registry: unknown preset")

// Preset generates a layout for any grid size.
type Preset interface {
	// ID returns a unique identifier for this preset (e.g., "wall").
	// Used for CLI flags and for cycling presets in the editor.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build returns the layout for a size x size grid. The result must pass
	// layouts.Layout.Validate for every size >= 2.
	Build(size int) layouts.Layout
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a preset.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from a preset's init() function.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a preset by its ID.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, id)
	}

	return f(), nil
}

// Build creates the preset and builds its layout for the given size.
func Build(id string, size int) (layouts.Layout, error) {
	p, err := Create(id)
	if err != nil {
		return layouts.Layout{}, err
	}
	return p.Build(size), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Next returns the ID that follows id in List order, wrapping around.
// An unknown or empty id yields the first preset.
func Next(id string) (string, bool) {
	list := List()
	if len(list) == 0 {
		return "", false
	}
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID, true
		}
	}
	return list[0].ID, true
}
