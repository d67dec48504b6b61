package engine

// Typed accessors over the dynamic API. These are sugar only: every
// call routes through the same store and query cache, so invalidation
// semantics are identical to the reflect.Type surface.

// Get returns the entity's component of type T.
// ErrUnknownEntity / ErrComponentNotPresent as for ComponentForEntity.
func Get[T any](w *World, e Entity) (T, error) {
	c, err := w.ComponentForEntity(e, TypeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return c.(T), nil
}

// TryGet returns the entity's component of type T, or false.
// Never errors.
func TryGet[T any](w *World, e Entity) (T, bool) {
	c, ok := w.TryComponent(e, TypeOf[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Each calls fn for every entity holding a T, in attachment order.
// The iteration runs over a snapshot: fn may create, delete, attach
// or detach freely.
func Each[T any](w *World, fn func(Entity, T)) {
	for _, p := range w.GetComponent(TypeOf[T]()) {
		fn(p.Entity, p.Component.(T))
	}
}

// Each2 calls fn for every entity holding both an A and a B
func Each2[A, B any](w *World, fn func(Entity, A, B)) {
	for _, m := range w.GetComponents(TypeOf[A](), TypeOf[B]()) {
		fn(m.Entity, m.Components[0].(A), m.Components[1].(B))
	}
}

// Each3 calls fn for every entity holding an A, a B and a C
func Each3[A, B, C any](w *World, fn func(Entity, A, B, C)) {
	for _, m := range w.GetComponents(TypeOf[A](), TypeOf[B](), TypeOf[C]()) {
		fn(m.Entity, m.Components[0].(A), m.Components[1].(B), m.Components[2].(C))
	}
}
