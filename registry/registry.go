// Package registry manages a table of named, fully isolated worlds.
// No state crosses world boundaries except explicit migration through
// ComponentsForEntity and CreateEntity.
package registry

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/sedgewren/husk/engine"
)

// DefaultWorld is the name of the world active after New
const DefaultWorld = "default"

// ErrActiveWorld is returned when deleting the currently active world
var ErrActiveWorld = errors.New("active world cannot be deleted")

// Registry owns the table of named worlds and tracks which one is
// active. It is an explicit object constructed by the embedding
// application, not ambient state.
type Registry struct {
	worlds  map[string]*engine.World
	current string
	log     *zap.Logger
}

// New creates a registry with a single active world named "default".
// A nil logger disables logging.
func New(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		worlds: make(map[string]*engine.World),
		log:    log,
	}
	r.Switch(DefaultWorld)
	return r
}

// Current returns the active world
func (r *Registry) Current() *engine.World {
	return r.worlds[r.current]
}

// CurrentName returns the name of the active world
func (r *Registry) CurrentName() string {
	return r.current
}

// Switch activates the named world, creating it on first use
func (r *Registry) Switch(name string) *engine.World {
	w, ok := r.worlds[name]
	if !ok {
		w = engine.NewWorld()
		w.SetLogger(r.log.Named(name))
		r.worlds[name] = w
		r.log.Info("world created", zap.String("world", name))
	}
	r.current = name
	return w
}

// Delete removes a named world and everything in it. The active world
// cannot be deleted; deleting an unknown name is a no-op.
func (r *Registry) Delete(name string) error {
	if name == r.current {
		return ErrActiveWorld
	}
	if _, ok := r.worlds[name]; !ok {
		return nil
	}
	delete(r.worlds, name)
	r.log.Info("world deleted", zap.String("world", name))
	return nil
}

// List returns all world names in sorted order
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.worlds))
	for name := range r.worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
