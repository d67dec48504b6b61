package engine

import (
	"reflect"
	"sort"
	"time"
)

// processorEntry pairs a processor with its scheduling priority
type processorEntry struct {
	proc     Processor
	priority int
}

// scheduler keeps the processor list sorted by descending priority.
// Insertion order is the tie-breaker among equal priorities.
type scheduler struct {
	entries []processorEntry
	times   map[string]time.Duration
}

func newScheduler() *scheduler {
	return &scheduler{
		entries: make([]processorEntry, 0, 8),
		times:   make(map[string]time.Duration),
	}
}

func (s *scheduler) add(p Processor, priority int) {
	s.entries = append(s.entries, processorEntry{proc: p, priority: priority})
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].priority > s.entries[j].priority
	})
}

// remove drops the entry holding exactly this processor instance
func (s *scheduler) remove(p Processor) {
	for i, entry := range s.entries {
		if entry.proc == p {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// removeType drops every entry whose processor has the given dynamic type
func (s *scheduler) removeType(t reflect.Type) {
	kept := s.entries[:0]
	for _, entry := range s.entries {
		if reflect.TypeOf(entry.proc) != t {
			kept = append(kept, entry)
		}
	}
	s.entries = kept
}

// getType returns the first processor of the given dynamic type
func (s *scheduler) getType(t reflect.Type) (Processor, bool) {
	for _, entry := range s.entries {
		if reflect.TypeOf(entry.proc) == t {
			return entry.proc, true
		}
	}
	return nil, false
}

// snapshot copies the current schedule so a processor may add or
// remove processors without corrupting the tick in progress
func (s *scheduler) snapshot() []processorEntry {
	out := make([]processorEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// processorName is the key used for per-processor timing
func processorName(p Processor) string {
	t := reflect.TypeOf(p)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// AddProcessor registers a processor. Higher priority runs first;
// processors sharing a priority run in registration order.
func (w *World) AddProcessor(p Processor, priority int) {
	w.sched.add(p, priority)
}

// RemoveProcessor unregisters the exact processor instance.
// No-op if it was never added.
func (w *World) RemoveProcessor(p Processor) {
	w.sched.remove(p)
}

// ProcessorOf returns the first registered processor of type T
func ProcessorOf[T Processor](w *World) (T, bool) {
	p, ok := w.sched.getType(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		var zero T
		return zero, false
	}
	return p.(T), true
}

// RemoveProcessorOf unregisters every processor of type T.
// No-op if none are registered.
func RemoveProcessorOf[T Processor](w *World) {
	w.sched.removeType(reflect.TypeOf((*T)(nil)).Elem())
}
