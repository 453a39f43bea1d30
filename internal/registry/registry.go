// Package registry provides a global registry of render/input drivers.
// Drivers register themselves in init() functions, so the CLI can list and
// select them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/dragon"
)

// ErrUnknownDriver is returned when no driver is registered under a name.
var ErrUnknownDriver = errors.New("unknown driver")

// Driver owns the terminal: it reads keys, measures frame time, calls
// Game.Tick once per frame and shows the resulting screen.
type Driver interface {
	// Name returns the identifier used by --driver (e.g. "tui").
	Name() string

	// Run drives the game until it asks to quit or the terminal fails.
	Run(game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error
}

// DriverInfo contains metadata about a registered driver. It is stored at
// registration, so listing drivers never instantiates one.
type DriverInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a new driver.
type Factory func() Driver

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]DriverInfo)
	mu        sync.RWMutex
)

// Register adds a driver factory to the registry under info.Name.
// Panics if a driver with the same name is already registered.
func Register(info DriverInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.Name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", info.Name))
	}

	factories[info.Name] = f
	infos[info.Name] = info
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
func Create(name string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownDriver, name)
	}

	return f(), nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
