package engine

import (
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Pair couples an entity with a single component instance
type Pair struct {
	Entity    Entity
	Component Component
}

// Match couples an entity with one instance per requested component
// type, in the order the types were passed to GetComponents
type Match struct {
	Entity     Entity
	Components []Component
}

// queryCache memoizes multi-type query results keyed by the unordered
// set of requested component types. Invalidation is coarse: any
// structural mutation clears the whole cache. This trades a recompute
// on the next query for a trivially correct invalidation policy.
type queryCache struct {
	entries map[uint64][]Entity
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[uint64][]Entity)}
}

func (c *queryCache) clear() {
	if len(c.entries) > 0 {
		c.entries = make(map[uint64][]Entity)
	}
}

// typeSetKey hashes the canonical names of the requested types in
// sorted order, so GetComponents(A, B) and GetComponents(B, A) share
// one cache entry
func typeSetKey(types []reflect.Type) uint64 {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	sort.Strings(names)

	d := xxhash.New()
	for _, n := range names {
		_, _ = d.WriteString(n)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		return "*" + typeName(t.Elem())
	}
	if pp := t.PkgPath(); pp != "" {
		return pp + "." + t.Name()
	}
	return t.String()
}

// GetComponent returns every (entity, instance) pair for a single
// component type, in attachment order. Single-submap scans are cheap
// and are not cached. The result is a materialized snapshot: mutating
// the world while consuming it is safe.
func (w *World) GetComponent(t reflect.Type) []Pair {
	sm, ok := w.store.types[t]
	if !ok {
		return nil
	}
	pairs := make([]Pair, 0, sm.len())
	for _, e := range sm.order {
		if w.entities.isPending(e) {
			continue
		}
		pairs = append(pairs, Pair{Entity: e, Component: sm.instances[e]})
	}
	return pairs
}

// GetComponents returns every entity holding all of the given component
// types, with instances ordered per the argument list. The matched
// entity sequence is computed once per type set and cached until the
// next structural mutation; instances are gathered per call so a
// reordered argument list still yields correctly ordered tuples.
// The result is a materialized snapshot, never a live view.
func (w *World) GetComponents(types ...reflect.Type) []Match {
	if len(types) == 0 {
		return nil
	}

	key := typeSetKey(types)
	matched, ok := w.cache.entries[key]
	if !ok {
		matched = w.matchEntities(types)
		w.cache.entries[key] = matched
	}

	result := make([]Match, 0, len(matched))
	for _, e := range matched {
		r := w.store.rows[e]
		comps := make([]Component, len(types))
		for i, t := range types {
			comps[i] = r.comps[t]
		}
		result = append(result, Match{Entity: e, Components: comps})
	}
	return result
}

// matchEntities intersects the submaps of the requested types. The
// smallest submap drives the scan to minimize probe count; emission
// order is the driver's attachment order. Entities pending deletion
// are excluded, so a deferred-deleted entity disappears from new
// queries before the sweep removes its data.
func (w *World) matchEntities(types []reflect.Type) []Entity {
	submaps := make([]*submap, len(types))
	driver := 0
	for i, t := range types {
		sm, ok := w.store.types[t]
		if !ok {
			return []Entity{}
		}
		submaps[i] = sm
		if sm.len() < submaps[driver].len() {
			driver = i
		}
	}

	matched := make([]Entity, 0, submaps[driver].len())
	for _, e := range submaps[driver].order {
		if w.entities.isPending(e) {
			continue
		}
		all := true
		for i, sm := range submaps {
			if i == driver {
				continue
			}
			if !sm.has(e) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, e)
		}
	}
	return matched
}

// ClearCache drops all cached query results without other side
// effects. Structural mutations invalidate the cache automatically;
// this is exposed for callers that mutate state the store cannot
// observe.
func (w *World) ClearCache() {
	w.cache.clear()
}
