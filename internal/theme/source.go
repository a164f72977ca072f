package theme

import "sync"

// Source delivers the system color-scheme signal.
//
// Current is read synchronously to seed a resolver; Subscribe registers a
// listener for subsequent changes and returns a cancel function. Cancel
// must be idempotent: revoking twice is safe and the second call is a
// no-op.
type Source interface {
	Current() Signal
	Subscribe(fn func(Signal)) (cancel func())
}

// StaticSource is an in-process Source whose signal is set by the host.
//
// It fans a Set out to all subscribed listeners when the signal actually
// changes. Hosts bridge their platform's change notifications into Set;
// tests drive it directly.
//
// Thread-safety: all methods are safe for concurrent use. Listeners are
// invoked without the lock held, in unspecified order.
type StaticSource struct {
	mu        sync.Mutex
	signal    Signal
	listeners map[int]func(Signal)
	nextID    int
}

// StaticSource implements Source.
var _ Source = (*StaticSource)(nil)

// NewStaticSource creates a source reporting the given initial signal.
func NewStaticSource(initial Signal) *StaticSource {
	return &StaticSource{
		signal:    initial,
		listeners: make(map[int]func(Signal)),
	}
}

// Current implements Source.
func (s *StaticSource) Current() Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal
}

// Subscribe implements Source. The returned cancel removes the listener;
// calling it more than once is safe.
func (s *StaticSource) Subscribe(fn func(Signal)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Set updates the signal and notifies listeners. A Set to the current
// signal is a no-op.
func (s *StaticSource) Set(sig Signal) {
	s.mu.Lock()
	if s.signal == sig {
		s.mu.Unlock()
		return
	}
	s.signal = sig
	fns := make([]func(Signal), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(sig)
	}
}

// ListenerCount returns the number of subscribed listeners. Used by tests
// to verify teardown.
func (s *StaticSource) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
