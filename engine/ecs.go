package engine

import (
	"reflect"
	"time"
)

// Entity is a unique identifier for an entity.
// IDs are issued monotonically and never reused within a world's
// lifetime, except after an explicit ClearDatabase.
type Entity uint64

// NoEntity is the zero identifier, never issued by a world
const NoEntity Entity = 0

// Component is a value attached to an entity, indexed by its dynamic type.
// Instances are stored as given: pass a pointer when processors should be
// able to mutate the component in place.
type Component any

// Processor is a unit of per-tick logic invoked by the world in
// descending priority order. A returned error aborts the remainder
// of the tick and propagates to the Process caller.
type Processor interface {
	Process(w *World, dt time.Duration) error
}

// TypeOf returns the component type tag for T without allocating a value
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
