package notify

// Subscriber receives values published on a Registry.
type Subscriber[T any] interface {
	Notify(value T)
}

// Func adapts a plain function to the Subscriber interface.
type Func[T any] func(T)

// Notify calls the wrapped function.
func (f Func[T]) Notify(value T) { f(value) }

// Handle represents one subscription's liveness. A subscriber that is being
// destroyed calls Close; the registry prunes the entry lazily during the next
// NotifyAll.
type Handle struct {
	closed bool
}

// Close marks the subscription dead. Subsequent NotifyAll calls skip and
// remove it. Closing an already closed handle is a no-op.
func (h *Handle) Close() { h.closed = true }

// Closed reports whether the subscription has been closed.
func (h *Handle) Closed() bool { return h.closed }

// Registry fans out values of type T to an ordered, dynamically changing set
// of subscribers.
//
// Registry stands in for a weak-reference subscriber collection: instead of
// weak pointers, each entry carries a Handle whose liveness flag the owner
// clears on destruction. Dead entries are detected and removed the first time
// a NotifyAll visits them; there is no eager deregistration.
//
// A Registry is strictly single-goroutine: it has no internal synchronization
// and must only be used from the interactive thread. NotifyAll is not
// reentrant-safe; a subscriber must not trigger another NotifyAll on the same
// registry from within its Notify callback.
type Registry[T any] struct {
	entries []entry[T]
}

type entry[T any] struct {
	handle *Handle
	sub    Subscriber[T]
}

// Add registers a subscriber and returns the Handle controlling its lifetime.
// Adding the same subscriber twice is allowed; it will be notified twice.
func (r *Registry[T]) Add(sub Subscriber[T]) *Handle {
	h := &Handle{}
	r.entries = append(r.entries, entry[T]{handle: h, sub: sub})
	return h
}

// NotifyAll delivers value synchronously to every live subscriber in
// registration order, and removes entries whose handle has been closed. No
// entry is visited twice in one call.
func (r *Registry[T]) NotifyAll(value T) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.handle.closed {
			continue
		}
		e.sub.Notify(value)
		kept = append(kept, e)
	}
	// let the dropped tail be collected
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = entry[T]{}
	}
	r.entries = kept
}

// Len returns the number of registered entries, including closed ones that
// have not been pruned yet.
func (r *Registry[T]) Len() int { return len(r.entries) }
