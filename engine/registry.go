package engine

// entityRegistry allocates entity identifiers and tracks the
// pending-deletion set for the deferred sweep
type entityRegistry struct {
	nextID  Entity
	pending map[Entity]struct{}
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		pending: make(map[Entity]struct{}),
	}
}

// allocate issues the next identifier, starting at 1
func (r *entityRegistry) allocate() Entity {
	r.nextID++
	return r.nextID
}

func (r *entityRegistry) markDead(e Entity) {
	r.pending[e] = struct{}{}
}

func (r *entityRegistry) unmarkDead(e Entity) {
	delete(r.pending, e)
}

func (r *entityRegistry) isPending(e Entity) bool {
	_, ok := r.pending[e]
	return ok
}

func (r *entityRegistry) pendingCount() int {
	return len(r.pending)
}

// reset clears the pending set and restarts identifier allocation.
// Only a whole-database reset may reuse previously issued ids.
func (r *entityRegistry) reset() {
	r.nextID = 0
	r.pending = make(map[Entity]struct{})
}
