package engine

import (
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/sedgewren/husk/event"
)

// World is the composition root for one isolated simulation context.
// It owns the entity registry, the component database, the query cache
// and the processor schedule. Client code touches only the World.
//
// A world is driven by exactly one logical thread of control: there is
// no internal locking and no concurrent mutation support.
type World struct {
	entities *entityRegistry
	store    *componentStore
	cache    *queryCache
	sched    *scheduler

	// Events is the world's name-keyed dispatch side-channel.
	// Worlds never share handlers.
	Events *event.Dispatcher

	log *zap.Logger
}

// NewWorld creates an empty world with no processors registered
func NewWorld() *World {
	return &World{
		entities: newEntityRegistry(),
		store:    newComponentStore(),
		cache:    newQueryCache(),
		sched:    newScheduler(),
		Events:   event.NewDispatcher(),
		log:      zap.NewNop(),
	}
}

// SetLogger installs a logger for debug-level tick instrumentation.
// The default is a nop logger.
func (w *World) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log
}

// CreateEntity allocates the next entity identifier, attaching any
// given component instances atomically with creation
func (w *World) CreateEntity(components ...Component) Entity {
	e := w.entities.allocate()
	w.store.ensureRow(e)
	for _, c := range components {
		w.store.attach(e, c)
	}
	if len(components) > 0 {
		w.cache.clear()
	}
	return e
}

// DeleteEntity marks an entity for deferred deletion. The entity stops
// existing and disappears from new queries immediately, but its
// component data stays readable until the sweep at the top of the next
// Process call. Unknown or already-dead ids are a no-op.
func (w *World) DeleteEntity(e Entity) {
	if !w.EntityExists(e) {
		return
	}
	w.entities.markDead(e)
	w.cache.clear()
}

// DeleteEntityNow physically removes an entity and all its components
// synchronously. Unsafe while consuming a query result that may still
// reference the entity's data; prefer DeleteEntity from processors.
// Unknown ids are a no-op.
func (w *World) DeleteEntityNow(e Entity) {
	if !w.store.hasRow(e) {
		return
	}
	w.entities.unmarkDead(e)
	w.store.dropEntity(e)
	w.cache.clear()
}

// EntityExists reports whether the id was issued, is not pending
// deletion, and has not been physically removed
func (w *World) EntityExists(e Entity) bool {
	return w.store.hasRow(e) && !w.entities.isPending(e)
}

// AddComponent attaches an instance to an entity, replacing any
// existing instance of the same type. ErrUnknownEntity if the entity
// does not exist.
func (w *World) AddComponent(e Entity, c Component) error {
	if !w.EntityExists(e) {
		return fmt.Errorf("add component %T: %w: %d", c, ErrUnknownEntity, e)
	}
	w.store.attach(e, c)
	w.cache.clear()
	return nil
}

// RemoveComponent detaches and returns the instance of the given type.
// ErrComponentNotPresent if the entity does not hold that type.
func (w *World) RemoveComponent(e Entity, t reflect.Type) (Component, error) {
	c, ok := w.store.detach(e, t)
	if !ok {
		return nil, fmt.Errorf("remove %s from entity %d: %w", t, e, ErrComponentNotPresent)
	}
	w.cache.clear()
	return c, nil
}

// TryRemoveComponent detaches the instance of the given type if
// present. Absence is a silent no-op.
func (w *World) TryRemoveComponent(e Entity, t reflect.Type) {
	if _, ok := w.store.detach(e, t); ok {
		w.cache.clear()
	}
}

// ComponentForEntity returns the instance of the given type attached
// to the entity. Data of an entity pending deletion stays readable
// until the sweep.
func (w *World) ComponentForEntity(e Entity, t reflect.Type) (Component, error) {
	r, ok := w.store.rows[e]
	if !ok {
		return nil, fmt.Errorf("component for entity %d: %w", e, ErrUnknownEntity)
	}
	c, ok := r.comps[t]
	if !ok {
		return nil, fmt.Errorf("component %s for entity %d: %w", t, e, ErrComponentNotPresent)
	}
	return c, nil
}

// TryComponent returns the instance of the given type, or false if the
// entity does not exist or does not hold it. Never errors.
func (w *World) TryComponent(e Entity, t reflect.Type) (Component, bool) {
	r, ok := w.store.rows[e]
	if !ok {
		return nil, false
	}
	c, ok := r.comps[t]
	return c, ok
}

// HasComponent reports whether the entity holds the given type
func (w *World) HasComponent(e Entity, t reflect.Type) bool {
	r, ok := w.store.rows[e]
	if !ok {
		return false
	}
	_, ok = r.comps[t]
	return ok
}

// HasComponents reports whether the entity holds every given type
func (w *World) HasComponents(e Entity, types ...reflect.Type) bool {
	r, ok := w.store.rows[e]
	if !ok {
		return false
	}
	for _, t := range types {
		if _, ok := r.comps[t]; !ok {
			return false
		}
	}
	return true
}

// ComponentsForEntity returns every instance attached to the entity in
// attachment order. This walks the whole row and is not meant for
// per-tick hot paths; its use is migrating an entity between worlds
// together with CreateEntity.
func (w *World) ComponentsForEntity(e Entity) ([]Component, error) {
	r, ok := w.store.rows[e]
	if !ok {
		return nil, fmt.Errorf("components for entity %d: %w", e, ErrUnknownEntity)
	}
	out := make([]Component, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.comps[t])
	}
	return out, nil
}

// ClearDeadEntities physically removes every entity pending deferred
// deletion. Process calls this before running processors; it is
// exported for callers driving their processors manually.
func (w *World) ClearDeadEntities() {
	n := w.entities.pendingCount()
	if n == 0 {
		return
	}
	for e := range w.entities.pending {
		w.store.dropEntity(e)
	}
	w.entities.pending = make(map[Entity]struct{})
	w.cache.clear()
	w.log.Debug("swept dead entities", zap.Int("count", n))
}

// Process sweeps entities pending deletion, then invokes every
// processor in descending priority order, forwarding dt unchanged.
// The first processor error aborts the remainder of the tick and
// propagates; there is no per-processor isolation.
func (w *World) Process(dt time.Duration) error {
	w.ClearDeadEntities()
	for _, entry := range w.sched.snapshot() {
		if err := entry.proc.Process(w, dt); err != nil {
			return fmt.Errorf("processor %s: %w", processorName(entry.proc), err)
		}
	}
	return nil
}

// TimedProcess behaves exactly like Process but records the wall-clock
// duration of each processor invocation, readable via ProcessTimes
func (w *World) TimedProcess(dt time.Duration) error {
	w.ClearDeadEntities()
	for _, entry := range w.sched.snapshot() {
		start := time.Now()
		err := entry.proc.Process(w, dt)
		elapsed := time.Since(start)
		w.sched.times[processorName(entry.proc)] = elapsed
		if err != nil {
			return fmt.Errorf("processor %s: %w", processorName(entry.proc), err)
		}
		w.log.Debug("processor timed",
			zap.String("processor", processorName(entry.proc)),
			zap.Duration("elapsed", elapsed))
	}
	return nil
}

// ProcessTimes returns a copy of the last recorded duration per
// processor. Populated only by TimedProcess.
func (w *World) ProcessTimes() map[string]time.Duration {
	out := make(map[string]time.Duration, len(w.sched.times))
	for name, d := range w.sched.times {
		out[name] = d
	}
	return out
}

// ClearDatabase removes all entities and components and restarts
// identifier allocation. Registered processors are kept.
func (w *World) ClearDatabase() {
	w.entities.reset()
	w.store.clear()
	w.cache.clear()
}
