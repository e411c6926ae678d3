// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the CLI
// to pick one by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dovefly/internal/core"
)

// Display is a terminal backend: a sink for composited frames and a source
// of player actions.
type Display interface {
	core.Sink
	core.KeySource

	// Run owns the terminal until play returns or the user leaves.
	// play gets a context that is cancelled when the display shuts down. It
	// may run on the caller's goroutine or on one started by Run; either way
	// Run returns only after play has returned.
	Run(ctx context.Context, play func(ctx context.Context) error) error
}

// Options configure a display when it is created.
type Options struct {
	Width  int  // Cells the game draws into
	Height int  // Rows the game draws into
	Color  bool // Colour glyphs by class instead of plain text
}

// Info contains metadata about a registered backend.
type Info struct {
	Name  string
	Title string
}

// Factory creates a display. Backends should not touch the terminal until
// Run is called.
type Factory func(opts Options) (Display, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a display factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: display %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered backends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a display by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Display, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown display %q", name)
	}

	d, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", name, err)
	}
	return d, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
