package handles

import (
	"context"
	"log/slog"
	"sync"
)

// Policy decides when the handles bound to a widget are released.
type Policy int

const (
	// PolicyLeak keeps a widget's callback handles alive for the rest of the
	// process, even after the widget is destroyed. Registrations are bounded
	// by the number of controls a user interface builds, so the leak is
	// bounded too, and no destroyed-widget callback can ever read freed state.
	PolicyLeak Policy = iota

	// PolicyWidgetBound releases a widget's handles when the wrapper destroys
	// the widget. Only destruction that goes through the wrapper is observed:
	// a widget destroyed by the toolkit behind the wrapper's back keeps its
	// handles until Close.
	PolicyWidgetBound
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyLeak:
		return "leak"
	case PolicyWidgetBound:
		return "widget-bound"
	default:
		return "unknown"
	}
}

type slotKey struct {
	widget uintptr
	event  string
}

// Manager owns the handles a UI registers and applies a Policy to them.
// Each (widget, event) pair holds at most one handle.
type Manager struct {
	arena  *Arena
	policy Policy
	log    *slog.Logger

	mu       sync.Mutex
	slots    map[slotKey]Handle
	byWidget map[uintptr][]string
	owned    map[Handle]struct{}
}

// NewManager returns a manager storing its handles in arena.
// A nil logger discards output.
func NewManager(arena *Arena, policy Policy, log *slog.Logger) *Manager {
	if arena == nil {
		arena = defaultArena
	}
	if log == nil {
		log = slog.New(discard{})
	}
	return &Manager{
		arena:    arena,
		policy:   policy,
		log:      log,
		slots:    make(map[slotKey]Handle),
		byWidget: make(map[uintptr][]string),
		owned:    make(map[Handle]struct{}),
	}
}

// Policy returns the manager's release policy.
func (m *Manager) Policy() Policy {
	return m.policy
}

// Arena returns the arena the manager registers into.
func (m *Manager) Arena() *Arena {
	return m.arena
}

// Bind registers v as the callback for event on widget. install receives the
// new handle and must hand it to the toolkit; once it returns, the handle the
// slot held before is released, since the toolkit no longer references it.
func (m *Manager) Bind(widget uintptr, event string, v any, install func(Handle)) Handle {
	h := m.arena.Register(v)
	install(h)

	key := slotKey{widget, event}
	m.mu.Lock()
	prev, replaced := m.slots[key]
	m.slots[key] = h
	m.owned[h] = struct{}{}
	if !replaced {
		m.byWidget[widget] = append(m.byWidget[widget], event)
	} else {
		delete(m.owned, prev)
	}
	m.mu.Unlock()

	m.log.Debug("uigo: callback bound", "widget", widget, "event", event, "handle", h)
	if replaced {
		if err := m.arena.Unregister(prev); err != nil {
			m.log.Warn("uigo: releasing replaced callback", "handle", prev, "error", err)
		} else {
			m.log.Debug("uigo: callback replaced", "widget", widget, "event", event, "handle", prev)
		}
	}
	return h
}

// Own registers v under a handle that belongs to no widget slot: a task the
// toolkit invokes at most once, a timer, or a table model. The owner frees
// it with Release; anything still owned is freed by Close.
func (m *Manager) Own(v any) Handle {
	h := m.arena.Register(v)
	m.mu.Lock()
	m.owned[h] = struct{}{}
	m.mu.Unlock()
	return h
}

// Release frees a handle obtained from Own. Handles obtained from Bind are
// released by the manager itself.
func (m *Manager) Release(h Handle) error {
	m.mu.Lock()
	delete(m.owned, h)
	m.mu.Unlock()
	return m.arena.Unregister(h)
}

// Bound returns the handle currently bound to (widget, event).
func (m *Manager) Bound(widget uintptr, event string) (Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.slots[slotKey{widget, event}]
	return h, ok
}

// DestroyWidget applies the policy to every handle bound to widget. It
// reports how many handles were released.
func (m *Manager) DestroyWidget(widget uintptr) int {
	m.mu.Lock()
	events := m.byWidget[widget]
	if m.policy != PolicyWidgetBound {
		m.mu.Unlock()
		if len(events) > 0 {
			m.log.Debug("uigo: widget destroyed, callbacks kept", "widget", widget, "policy", m.policy, "count", len(events))
		}
		return 0
	}
	var release []Handle
	for _, ev := range events {
		key := slotKey{widget, ev}
		h := m.slots[key]
		delete(m.slots, key)
		delete(m.owned, h)
		release = append(release, h)
	}
	delete(m.byWidget, widget)
	m.mu.Unlock()

	for _, h := range release {
		if err := m.arena.Unregister(h); err != nil {
			m.log.Warn("uigo: releasing widget callback", "widget", widget, "handle", h, "error", err)
		}
	}
	if len(release) > 0 {
		m.log.Debug("uigo: widget callbacks released", "widget", widget, "count", len(release))
	}
	return len(release)
}

// Close releases every handle the manager still owns. It must only be called
// once the toolkit can no longer invoke callbacks.
func (m *Manager) Close() int {
	m.mu.Lock()
	owned := m.owned
	m.owned = make(map[Handle]struct{})
	m.slots = make(map[slotKey]Handle)
	m.byWidget = make(map[uintptr][]string)
	m.mu.Unlock()

	n := 0
	for h := range owned {
		if m.arena.Unregister(h) == nil {
			n++
		}
	}
	return n
}

// Len returns the number of handles the manager owns.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.owned)
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
