package dropdown

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	expiresAt time.Time // zero value = never expires
	snap      Snapshot
	id        string
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*memoryStoreOptions)

type memoryStoreOptions struct {
	ttl             time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

// WithMemoryTTL sets how long an untouched widget is kept.
// Zero or negative keeps widgets until evicted.
// Default: 1 hour.
func WithMemoryTTL(d time.Duration) MemoryStoreOption {
	return func(o *memoryStoreOptions) {
		o.ttl = d
	}
}

// WithMemoryCleanupInterval sets how often expired widgets are removed.
// Zero disables the background janitor; expired entries are then dropped on access.
// Default: 1 minute.
func WithMemoryCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(o *memoryStoreOptions) {
		o.cleanupInterval = d
	}
}

// WithMemoryMaxEntries caps the number of widgets kept; the least recently
// used one is evicted first. Zero means unlimited.
// Default: 10000.
func WithMemoryMaxEntries(n int) MemoryStoreOption {
	return func(o *memoryStoreOptions) {
		o.maxEntries = n
	}
}

// MemoryStore is an in-process Store with sliding expiration and LRU eviction.
type MemoryStore struct {
	items  map[string]*list.Element
	lru    *list.List // front = most recently used
	opts   memoryStoreOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemoryStore creates a MemoryStore. Call Close to stop the janitor.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	o := memoryStoreOptions{
		ttl:             time.Hour,
		cleanupInterval: time.Minute,
		maxEntries:      10000,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &MemoryStore{
		items: make(map[string]*list.Element),
		lru:   list.New(),
		opts:  o,
		done:  make(chan struct{}),
	}
	if o.cleanupInterval > 0 {
		go m.janitor()
	}
	return m
}

// Load returns the snapshot for id and marks it as recently used.
func (m *MemoryStore) Load(_ context.Context, id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Snapshot{}, ErrClosed
	}

	elem, ok := m.items[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	e := elem.Value.(*memoryEntry)
	if e.expired(time.Now()) {
		m.remove(elem)
		return Snapshot{}, ErrNotFound
	}

	m.lru.MoveToFront(elem)
	return e.snap, nil
}

// Save stores snap under id and restarts its expiration.
func (m *MemoryStore) Save(_ context.Context, id string, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	var expiresAt time.Time
	if m.opts.ttl > 0 {
		expiresAt = time.Now().Add(m.opts.ttl)
	}

	if elem, ok := m.items[id]; ok {
		e := elem.Value.(*memoryEntry)
		e.snap = snap
		e.expiresAt = expiresAt
		m.lru.MoveToFront(elem)
		return nil
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.lru.Back(); oldest != nil {
			m.remove(oldest)
		}
	}

	m.items[id] = m.lru.PushFront(&memoryEntry{id: id, snap: snap, expiresAt: expiresAt})
	return nil
}

// Delete removes the snapshot for id.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if elem, ok := m.items[id]; ok {
		m.remove(elem)
	}
	return nil
}

// Len returns the number of stored widgets, including expired ones not yet removed.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Close is idempotent.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

func (m *MemoryStore) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *MemoryStore) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for elem := m.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*memoryEntry).expired(now) {
			m.remove(elem)
		}
		elem = prev
	}
}

// remove drops elem. Caller must hold the mutex.
func (m *MemoryStore) remove(elem *list.Element) {
	m.lru.Remove(elem)
	delete(m.items, elem.Value.(*memoryEntry).id)
}

var _ Store = (*MemoryStore)(nil)
