package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process Cache guarded by a RWMutex
type Memory struct {
	mu     sync.RWMutex
	scopes map[string]map[string]entry
	owner  map[string]string
	gens   map[string]uint64
	ttl    time.Duration
	closed bool
	now    func() time.Time
}

// NewMemory creates an empty in-process cache
func NewMemory(opts Options) *Memory {
	return &Memory{
		scopes: make(map[string]map[string]entry),
		owner:  make(map[string]string),
		gens:   make(map[string]uint64),
		ttl:    opts.TTL,
		now:    time.Now,
	}
}

// Get returns the value stored under key
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}

	scope, ok := m.owner[key]
	if !ok {
		return nil, false, nil
	}
	e, ok := m.scopes[scope][key]
	if !ok || e.expired(m.now()) {
		return nil, false, nil
	}
	return e.value, true, nil
}

// Generation returns the current generation of scope
func (m *Memory) Generation(_ context.Context, scope string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrClosed
	}
	return m.gens[scope], nil
}

// Set stores value under key within scope, unless scope has moved past gen
func (m *Memory) Set(_ context.Context, scope, key string, gen uint64, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.gens[scope] != gen {
		return nil
	}

	if prev, ok := m.owner[key]; ok && prev != scope {
		delete(m.scopes[prev], key)
	}

	entries, ok := m.scopes[scope]
	if !ok {
		entries = make(map[string]entry)
		m.scopes[scope] = entries
	}

	e := entry{value: value}
	if m.ttl > 0 {
		e.expiresAt = m.now().Add(m.ttl)
	}
	entries[key] = e
	m.owner[key] = scope
	return nil
}

// InvalidateScope drops every key of scope and advances its generation
func (m *Memory) InvalidateScope(_ context.Context, scope string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	for key := range m.scopes[scope] {
		delete(m.owner, key)
	}
	delete(m.scopes, scope)
	m.gens[scope]++
	return nil
}

// Len reports the number of live entries
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	n := 0
	for _, entries := range m.scopes {
		for _, e := range entries {
			if !e.expired(now) {
				n++
			}
		}
	}
	return n
}

func (m *Memory) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrClosed
	}
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.scopes = nil
	m.owner = nil
	m.gens = nil
	return nil
}
