// Package event provides a name-keyed publish/subscribe side-channel
// for processors. Handlers are unregistered explicitly through the
// Subscription returned at registration time; the owner of a handler
// drops it by calling Cancel, typically in its own teardown.
package event

// Handler receives the arguments passed to Dispatch, unchanged
type Handler func(args ...any)

type handlerEntry struct {
	id int
	fn Handler
}

// Dispatcher routes dispatched events to the handlers subscribed
// under the same name. Dispatching a name with no handlers is silent.
//
// Like the rest of the runtime, a dispatcher belongs to a single
// logical thread of control and performs no locking.
type Dispatcher struct {
	handlers map[string][]handlerEntry
	nextID   int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]handlerEntry)}
}

// Subscribe registers fn for the named event. The returned
// Subscription is the only way to unregister it.
func (d *Dispatcher) Subscribe(name string, fn Handler) *Subscription {
	d.nextID++
	d.handlers[name] = append(d.handlers[name], handlerEntry{id: d.nextID, fn: fn})
	return &Subscription{d: d, name: name, id: d.nextID}
}

// Dispatch invokes every handler subscribed under name, in
// subscription order, forwarding args unchanged
func (d *Dispatcher) Dispatch(name string, args ...any) {
	for _, entry := range d.handlers[name] {
		entry.fn(args...)
	}
}

// HandlerCount returns the number of handlers subscribed under name
func (d *Dispatcher) HandlerCount(name string) int {
	return len(d.handlers[name])
}

// Subscription is the cancellation token for one registered handler
type Subscription struct {
	d    *Dispatcher
	name string
	id   int
}

// Cancel unregisters the handler. Idempotent.
func (s *Subscription) Cancel() {
	entries := s.d.handlers[s.name]
	for i, entry := range entries {
		if entry.id == s.id {
			s.d.handlers[s.name] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(s.d.handlers[s.name]) == 0 {
		delete(s.d.handlers, s.name)
	}
}
