package term

import (
	"context"
	"sync"
)

// StartFunc runs a terminal request to completion.
type StartFunc func(ctx context.Context, req Request) error

// Manager owns the single reusable terminal. Opening a terminal while one
// is still running disposes of the old one first.
type Manager struct {
	start StartFunc

	mu      sync.Mutex
	current *lease
}

type lease struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a Manager that runs requests with start. A nil start
// uses Start.
func NewManager(start StartFunc) *Manager {
	if start == nil {
		start = Start
	}
	return &Manager{start: start}
}

// Run acquires the terminal, replacing any live one, and runs req in it.
func (m *Manager) Run(ctx context.Context, req Request) error {
	l, ctx := m.acquire(ctx, req.Name)
	defer m.release(l)
	return m.start(ctx, req)
}

// active returns the name of the live terminal, if any.
func (m *Manager) active() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return "", false
	}
	return m.current.name, true
}

func (m *Manager) acquire(ctx context.Context, name string) (*lease, context.Context) {
	m.mu.Lock()
	prev := m.current
	ctx, cancel := context.WithCancel(ctx)
	l := &lease{name: name, cancel: cancel, done: make(chan struct{})}
	m.current = l
	m.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}
	return l, ctx
}

func (m *Manager) release(l *lease) {
	l.cancel()
	m.mu.Lock()
	if m.current == l {
		m.current = nil
	}
	m.mu.Unlock()
	close(l.done)
}
