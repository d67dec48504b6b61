package engine

import "reflect"

// submap is the dense per-type index: entity -> instance, plus an
// attachment-ordered entity list for deterministic iteration
type submap struct {
	instances map[Entity]Component
	order     []Entity
}

func newSubmap() *submap {
	return &submap{
		instances: make(map[Entity]Component),
		order:     make([]Entity, 0, 64),
	}
}

// set inserts or overwrites an instance. Overwriting keeps the
// entity's original attachment slot in the iteration order.
func (s *submap) set(e Entity, c Component) {
	if _, exists := s.instances[e]; !exists {
		s.order = append(s.order, e)
	}
	s.instances[e] = c
}

// remove deletes an entity's instance, compacting the order slice
// in place so the attachment order of the remaining entities holds
func (s *submap) remove(e Entity) {
	if _, exists := s.instances[e]; !exists {
		return
	}
	delete(s.instances, e)
	for i, entity := range s.order {
		if entity == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *submap) has(e Entity) bool {
	_, ok := s.instances[e]
	return ok
}

func (s *submap) len() int {
	return len(s.instances)
}

// row is the per-entity view: type -> instance in attachment order
type row struct {
	comps map[reflect.Type]Component
	order []reflect.Type
}

func newRow() *row {
	return &row{comps: make(map[reflect.Type]Component)}
}

func (r *row) set(t reflect.Type, c Component) {
	if _, exists := r.comps[t]; !exists {
		r.order = append(r.order, t)
	}
	r.comps[t] = c
}

func (r *row) remove(t reflect.Type) {
	if _, exists := r.comps[t]; !exists {
		return
	}
	delete(r.comps, t)
	for i, rt := range r.order {
		if rt == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// componentStore is the component database: one submap per component
// type, one row per entity. The two indexes are kept in lockstep;
// an entity appears in a type's submap iff its row holds that type.
type componentStore struct {
	types map[reflect.Type]*submap
	rows  map[Entity]*row
}

func newComponentStore() *componentStore {
	return &componentStore{
		types: make(map[reflect.Type]*submap),
		rows:  make(map[Entity]*row),
	}
}

// ensureRow registers an entity with the store. A present row, even an
// empty one, is what makes an entity known to the database.
func (cs *componentStore) ensureRow(e Entity) {
	if _, ok := cs.rows[e]; !ok {
		cs.rows[e] = newRow()
	}
}

func (cs *componentStore) hasRow(e Entity) bool {
	_, ok := cs.rows[e]
	return ok
}

// attach indexes an instance under both the entity's row and the
// component type's submap. The caller guarantees the row exists.
func (cs *componentStore) attach(e Entity, c Component) {
	t := reflect.TypeOf(c)
	sm, ok := cs.types[t]
	if !ok {
		sm = newSubmap()
		cs.types[t] = sm
	}
	sm.set(e, c)
	cs.rows[e].set(t, c)
}

// detach removes the instance of type t from the entity, returning it.
// Empty submaps are dropped so query drivers never see dead types.
func (cs *componentStore) detach(e Entity, t reflect.Type) (Component, bool) {
	r, ok := cs.rows[e]
	if !ok {
		return nil, false
	}
	c, ok := r.comps[t]
	if !ok {
		return nil, false
	}
	r.remove(t)
	if sm, ok := cs.types[t]; ok {
		sm.remove(e)
		if sm.len() == 0 {
			delete(cs.types, t)
		}
	}
	return c, true
}

// dropEntity physically removes an entity and all its instances
// from every index
func (cs *componentStore) dropEntity(e Entity) {
	r, ok := cs.rows[e]
	if !ok {
		return
	}
	for _, t := range r.order {
		if sm, ok := cs.types[t]; ok {
			sm.remove(e)
			if sm.len() == 0 {
				delete(cs.types, t)
			}
		}
	}
	delete(cs.rows, e)
}

func (cs *componentStore) clear() {
	cs.types = make(map[reflect.Type]*submap)
	cs.rows = make(map[Entity]*row)
}
