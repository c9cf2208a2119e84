// Package registry provides a global registry of display backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocketberry/internal/audio"
	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/input"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

// Backend presents a running session on some display and feeds it input.
// Run blocks until the player quits.
type Backend interface {
	// Title returns a human-readable name for listings.
	Title() string

	Run(rt *Runtime) error
}

// Runtime is what the CLI hands to a backend: the session plus the
// producer side of its inputs.
type Runtime struct {
	Session  *game.Session
	Button   *input.Button
	Tilt     *tilt.Keyboard
	Sound    *audio.SoundManager
	Logger   *log.Logger
	TickRate int
}

// Step advances the session one frame, plays its sound cues and logs
// phase transitions.
func (rt *Runtime) Step() game.StepResult {
	res := rt.Session.Step()
	if rt.Sound != nil {
		rt.Sound.Handle(res.Events)
	}
	if rt.Logger == nil {
		return res
	}
	for _, ev := range res.Events {
		switch ev.Kind {
		case game.EventStarted:
			rt.Logger.Info("round started", "frame", res.Frame)
		case game.EventGameOver:
			rt.Logger.Info("game over", "score", ev.Value, "high", res.HighScore, "frame", res.Frame)
		case game.EventReset:
			rt.Logger.Info("round reset", "high", res.HighScore)
		case game.EventEnemyEscaped:
			rt.Logger.Debug("enemy escaped", "score", res.Score)
		}
	}
	return res
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name  string
	Title string
}

// Factory creates a new backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory under name.
// Panics if the name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title()
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{Name: name, Title: titles[name]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates the backend registered under name.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
