// Package registry provides a global registry of frontends.
// A frontend is the rendering and input collaborator of a flappy.Session:
// it owns the terminal (or nothing at all), turns input into commands and
// decides when ticks happen. Frontends register themselves in init()
// functions so the CLI can pick one by name.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options are the platform settings handed to a frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// MaxTicks stops frontends that support it after this many ticks (0 = no limit).
	MaxTicks int64
}

// Frontend drives a session until the user quits or ctx is cancelled.
type Frontend interface {
	// Name is the identifier used on the command line (e.g. "tui").
	Name() string

	// Description is a one-line summary for `flappy list`.
	Description() string

	// Run owns the session for its whole lifetime. The session is only
	// touched from the goroutine that called Run.
	Run(ctx context.Context, s *flappy.Session, opts Options) error
}

// Info describes a registered frontend.
type Info struct {
	Name        string
	Description string
}

// Factory creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory.
// Panics if the name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns all registered frontends sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{Name: name, Description: descriptions[name]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a frontend by name.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}
	return f(), nil
}

// Exists reports whether a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
