package system

import (
	"time"

	"github.com/sedgewren/husk/component"
	"github.com/sedgewren/husk/engine"
)

// Expiry burns down particle lifetimes and deletes expired particles.
// Deletion is deferred, so the iteration in progress and the renderer
// later in the same tick still see the particle; it is gone before the
// next tick's processors run.
type Expiry struct{}

func NewExpiry() *Expiry {
	return &Expiry{}
}

func (s *Expiry) Process(w *engine.World, dt time.Duration) error {
	engine.Each(w, func(e engine.Entity, lt *component.Lifetime) {
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			w.DeleteEntity(e)
			w.Events.Dispatch(EventParticleExpired, e)
		}
	})
	return nil
}
