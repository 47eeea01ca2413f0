// Package hooks dispatches lifecycle events to registered handlers. The set
// of event names is fixed when the registry is built; references to names
// outside that set fail rather than silently creating new events.
package hooks

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Tim020/botocore/botoerr"
)

// Handler reacts to one emitted event.
type Handler func(ctx context.Context, event string, payload map[string]any) error

type registration struct {
	name string
	fn   Handler
}

// Registry holds the known events and their handlers. Safe for concurrent
// registration and emission.
type Registry struct {
	mu       sync.RWMutex
	known    map[string]struct{}
	handlers map[string][]registration
	log      *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to trace dispatch.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a Registry knowing exactly the given event names.
func NewRegistry(events []string, opts ...Option) *Registry {
	r := &Registry{
		known:    make(map[string]struct{}, len(events)),
		handlers: make(map[string][]registration),
		log:      slog.Default(),
	}
	for _, e := range events {
		r.known[e] = struct{}{}
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register attaches a named handler to an event. Unknown events are an
// EventNotFoundError.
func (r *Registry) Register(event, name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.known[event]; !ok {
		return botoerr.NewEventNotFoundError(event)
	}
	r.handlers[event] = append(r.handlers[event], registration{name: name, fn: h})
	return nil
}

// Unregister removes every handler registered under name for the event.
func (r *Registry) Unregister(event, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.known[event]; !ok {
		return botoerr.NewEventNotFoundError(event)
	}
	kept := r.handlers[event][:0]
	for _, reg := range r.handlers[event] {
		if reg.name != name {
			kept = append(kept, reg)
		}
	}
	r.handlers[event] = kept
	return nil
}

// Emit invokes the event's handlers in registration order and stops at the
// first handler error.
func (r *Registry) Emit(ctx context.Context, event string, payload map[string]any) error {
	r.mu.RLock()
	if _, ok := r.known[event]; !ok {
		r.mu.RUnlock()
		return botoerr.NewEventNotFoundError(event)
	}
	regs := make([]registration, len(r.handlers[event]))
	copy(regs, r.handlers[event])
	r.mu.RUnlock()

	for _, reg := range regs {
		r.log.Debug("emitting event", slog.String("event", event), slog.String("handler", reg.name))
		if err := reg.fn(ctx, event, payload); err != nil {
			return err
		}
	}
	return nil
}
